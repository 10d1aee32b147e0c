package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements(`
-- header
CREATE TABLE a (
  id STRING(36) NOT NULL,
) PRIMARY KEY (id);

CREATE INDEX idx ON a(id);
`)

	require.Len(t, stmts, 2)
	assert.True(t, strings.HasPrefix(stmts[0], "CREATE TABLE a ("))
	assert.Equal(t, "CREATE INDEX idx ON a(id)", stmts[1])
}

func TestAll(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	joined := strings.Join(all[0].Statements, "\n")
	for _, table := range []string{"products", "coupons", "messages", "newsletters", "account_settings", "outbox_events"} {
		assert.Contains(t, joined, "CREATE TABLE "+table+" (")
	}
	assert.Contains(t, joined, "CREATE UNIQUE INDEX idx_newsletters_email ON newsletters(email)")
}
