package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
)

const defaultTestDB = "projects/test-project/instances/test-instance/databases/storefront-test"

// Tables in the order CleanDatabase clears them.
var Tables = []string{
	"outbox_events",
	"products",
	"coupons",
	"messages",
	"newsletters",
	"account_settings",
}

// SetupSpannerTest connects to the emulator database and empties it. The test
// is skipped when SPANNER_EMULATOR_HOST is not set.
func SetupSpannerTest(t *testing.T) *spanner.Client {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, TestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)
	t.Cleanup(func() {
		CleanDatabase(t, client)
		client.Close()
	})

	return client
}

// TestSpannerDB returns SPANNER_TEST_DATABASE or the emulator default.
func TestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return defaultTestDB
}

// CleanDatabase deletes every row in Tables.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	muts := make([]*spanner.Mutation, 0, len(Tables))
	for _, table := range Tables {
		muts = append(muts, spanner.Delete(table, spanner.AllKeys()))
	}
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to clean database")
}

// Apply writes muts directly.
func Apply(t *testing.T, client *spanner.Client, muts ...*spanner.Mutation) {
	t.Helper()
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err)
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expected int) {
	t.Helper()

	stmt := spanner.Statement{SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table)}
	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count))
	require.Equal(t, int64(expected), count, "unexpected row count in table %s", table)
}
