package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-admin/internal/config"
	"github.com/light-bringer/storefront-admin/internal/models/m_outbox"
	"github.com/light-bringer/storefront-admin/internal/pkg/logging"
	"github.com/light-bringer/storefront-admin/internal/services"
)

// Options for one cleanup run.
type Options struct {
	CompletedRetentionDays int
	FailedRetentionDays    int
	DryRun                 bool
}

var retentionFilter = fmt.Sprintf(
	"(%[1]s = '%[2]s' AND %[3]s < @completedCutoff) OR (%[1]s = '%[4]s' AND %[3]s < @failedCutoff)",
	m_outbox.Status, m_outbox.StatusCompleted, m_outbox.ProcessedAt, m_outbox.StatusFailed,
)

// cutoffs returns the processed_at bounds below which events are removed.
func (o Options) cutoffs(now time.Time) (completed, failed time.Time) {
	return now.AddDate(0, 0, -o.CompletedRetentionDays), now.AddDate(0, 0, -o.FailedRetentionDays)
}

func statement(sql string, completed, failed time.Time) spanner.Statement {
	return spanner.Statement{
		SQL: sql,
		Params: map[string]interface{}{
			"completedCutoff": completed,
			"failedCutoff":    failed,
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cleanup_outbox: %v\n", err)
		os.Exit(1)
	}

	opts := Options{}
	flag.StringVar(&cfg.SpannerDatabase, "database", cfg.SpannerDatabase, "Spanner database (projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&opts.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&opts.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be deleted without deleting")
	flag.Parse()

	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	client, err := services.NewSpannerClient(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("cleanup failed")
	}
	defer client.Close()

	if err := cleanupOutbox(ctx, client, opts, time.Now().UTC(), logger); err != nil {
		logger.Error().Err(err).Msg("cleanup failed")
		client.Close()
		os.Exit(1)
	}
	logger.Info().Msg("cleanup completed successfully")
}

func cleanupOutbox(ctx context.Context, client *spanner.Client, opts Options, now time.Time, logger zerolog.Logger) error {
	completed, failed := opts.cutoffs(now)
	logger.Info().
		Time("completed_cutoff", completed).
		Time("failed_cutoff", failed).
		Bool("dry_run", opts.DryRun).
		Msg("starting outbox cleanup")

	if opts.DryRun {
		return dryRun(ctx, client, completed, failed, logger)
	}
	return purge(ctx, client, completed, failed, logger)
}

func dryRun(ctx context.Context, client *spanner.Client, completed, failed time.Time, logger zerolog.Logger) error {
	sql := fmt.Sprintf("SELECT %s, COUNT(*) FROM %s WHERE %s GROUP BY %s",
		m_outbox.Status, m_outbox.TableName, retentionFilter, m_outbox.Status)

	iter := client.Single().Query(ctx, statement(sql, completed, failed))
	defer iter.Stop()

	var total int64
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to query events: %w", err)
		}

		var status string
		var count int64
		if err := row.Columns(&status, &count); err != nil {
			return fmt.Errorf("failed to parse row: %w", err)
		}
		logger.Info().Str("status", status).Int64("count", count).Msg("would delete")
		total += count
	}

	logger.Info().Int64("total", total).Msg("dry run complete, rerun without -dry-run to delete")
	return nil
}

func purge(ctx context.Context, client *spanner.Client, completed, failed time.Time, logger zerolog.Logger) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", m_outbox.TableName, retentionFilter)

	var deleted int64
	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, statement(sql, completed, failed))
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}

	logger.Info().Int64("deleted", deleted).Msg("old events deleted")
	return nil
}
