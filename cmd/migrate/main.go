package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-admin/internal/config"
	"github.com/light-bringer/storefront-admin/internal/pkg/logging"
	"github.com/light-bringer/storefront-admin/migrations"
)

// dbPath is a parsed projects/<p>/instances/<i>/databases/<d> name.
type dbPath struct {
	Project  string
	Instance string
	Database string
}

func (p dbPath) instanceName() string {
	return fmt.Sprintf("projects/%s/instances/%s", p.Project, p.Instance)
}

func (p dbPath) String() string {
	return fmt.Sprintf("%s/databases/%s", p.instanceName(), p.Database)
}

func parseDBPath(name string) (dbPath, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" ||
		parts[1] == "" || parts[3] == "" || parts[5] == "" {
		return dbPath{}, fmt.Errorf("invalid database name %q", name)
	}
	return dbPath{Project: parts[1], Instance: parts[3], Database: parts[5]}, nil
}

type migrator struct {
	path   dbPath
	opts   []option.ClientOption
	logger zerolog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
	dbName := flag.String("database", cfg.SpannerDatabase, "Spanner database name (projects/<p>/instances/<i>/databases/<d>)")
	flag.Parse()

	logger := logging.New(cfg.LogLevel)
	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		logger.Info().Str("host", host).Msg("using Spanner emulator")
	}

	path, err := parseDBPath(*dbName)
	if err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}
	m := &migrator{path: path, logger: logger}
	if cfg.SpannerCredentialsFile != "" {
		m.opts = append(m.opts, option.WithCredentialsFile(cfg.SpannerCredentialsFile))
	}

	if err := m.run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}
	logger.Info().Msg("migrations completed successfully")
}

func (m *migrator) run(ctx context.Context) error {
	if err := m.ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := m.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := m.applyMigrations(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (m *migrator) ensureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx, m.opts...)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.path.instanceName()})
	if err == nil {
		m.logger.Info().Str("instance", m.path.Instance).Msg("instance already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		m.logger.Warn().Err(err).Msg("unexpected error checking instance")
		return nil
	}

	m.logger.Info().Str("instance", m.path.Instance).Msg("creating instance")
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + m.path.Project,
		InstanceId: m.path.Instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", m.path.Project),
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		m.logger.Warn().Err(err).Msg("instance creation did not complete cleanly")
	}
	return nil
}

func (m *migrator) ensureDatabase(ctx context.Context) error {
	admin, err := database.NewDatabaseAdminClient(ctx, m.opts...)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.path.String()})
	if err == nil {
		m.logger.Info().Str("database", m.path.Database).Msg("database already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			m.logger.Warn().Err(err).Msg("proceeding with database in emulator mode")
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	m.logger.Info().Str("database", m.path.Database).Msg("creating database")
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.path.instanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.path.Database),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func (m *migrator) applyMigrations(ctx context.Context) error {
	all, err := migrations.All()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	if len(all) == 0 {
		m.logger.Info().Msg("no migrations found")
		return nil
	}

	admin, err := database.NewDatabaseAdminClient(ctx, m.opts...)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	for _, mig := range all {
		m.logger.Info().Str("migration", mig.Name).Int("statements", len(mig.Statements)).Msg("applying")
		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.path.String(),
			Statements: mig.Statements,
		})
		if err == nil {
			err = op.Wait(ctx)
		}
		if alreadyApplied(err) {
			m.logger.Info().Str("migration", mig.Name).Msg("already applied")
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", mig.Name, err)
		}
	}
	return nil
}

// alreadyApplied reports a DDL failure caused by objects that already exist.
func alreadyApplied(err error) bool {
	if err == nil {
		return false
	}
	if status.Code(err) == codes.AlreadyExists {
		return true
	}
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.FailedPrecondition && strings.Contains(st.Message(), "Duplicate name")
}
