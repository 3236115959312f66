package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/salesgen/internal/models"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

var errDatabasePath = errors.New("database must look like projects/P/instances/I/databases/D")

type databasePath struct {
	project  string
	instance string
	database string
}

func parseDatabasePath(s string) (databasePath, error) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return databasePath{}, fmt.Errorf("%w: %q", errDatabasePath, s)
	}
	for _, p := range []string{parts[1], parts[3], parts[5]} {
		if p == "" {
			return databasePath{}, fmt.Errorf("%w: %q", errDatabasePath, s)
		}
	}
	return databasePath{project: parts[1], instance: parts[3], database: parts[5]}, nil
}

func (p databasePath) projectName() string {
	return "projects/" + p.project
}

func (p databasePath) instanceName() string {
	return p.projectName() + "/instances/" + p.instance
}

func (p databasePath) String() string {
	return p.instanceName() + "/databases/" + p.database
}

// migrationDDL returns the Spanner DDL for the dataset tables in dependency
// order, preceded by drops (children first) when recreate is set.
func migrationDDL(recreate bool) ([]string, error) {
	tables, err := schema.Order(models.Tables())
	if err != nil {
		return nil, err
	}

	var stmts []string
	if recreate {
		for _, t := range schema.Reverse(tables) {
			stmts = append(stmts, schema.DropStmt(dialect.Spanner, t))
		}
	}
	for _, t := range tables {
		stmts = append(stmts, schema.CreateStmt(dialect.Spanner, t))
	}
	return stmts, nil
}

type migrateOptions struct {
	instanceConfig string
	recreate       bool
}

func (c *cli) migrateCmd() *cobra.Command {
	mo := migrateOptions{instanceConfig: "emulator-config"}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the Spanner instance, database and dataset tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			opts, err := c.setup()
			if err != nil {
				return err
			}
			defer opts.Close()

			path, err := parseDatabasePath(c.cfg.SpannerDatabase)
			if err != nil {
				return err
			}
			log := opts.Logger.WithField("database", path.String())
			if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
				log.Infof("Using Spanner emulator at %s", host)
			}

			if err := ensureInstance(ctx, log, path, mo.instanceConfig); err != nil {
				return fmt.Errorf("failed to ensure instance: %w", err)
			}
			if err := ensureDatabase(ctx, log, path); err != nil {
				return fmt.Errorf("failed to ensure database: %w", err)
			}
			if err := applyDDL(ctx, log, path, mo.recreate); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}

			log.Info("Migrations completed successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&c.cfg.SpannerDatabase, "database", c.cfg.SpannerDatabase, "Spanner database path")
	cmd.Flags().StringVar(&mo.instanceConfig, "instance-config", mo.instanceConfig, "Instance config used when the instance must be created")
	cmd.Flags().BoolVar(&mo.recreate, "recreate", false, "Drop the dataset tables before creating them")
	return cmd
}

func ensureInstance(ctx context.Context, log *logrus.Entry, path databasePath, instanceConfig string) error {
	log.Infof("Ensuring instance %s exists...", path.instance)

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{
		Name: path.instanceName(),
	})
	if err == nil {
		log.Info("Instance already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check instance: %w", err)
	}

	log.Info("Creating instance...")
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     path.projectName(),
		InstanceId: path.instance,
		Instance: &instancepb.Instance{
			Config:      path.projectName() + "/instanceConfigs/" + instanceConfig,
			DisplayName: "salesgen",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create instance: %w", err)
		}
		log.Info("Instance already exists")
		return nil
	}

	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance creation: %w", err)
	}
	log.Info("Instance created successfully")
	return nil
}

func ensureDatabase(ctx context.Context, log *logrus.Entry, path databasePath) error {
	log.Infof("Ensuring database %s exists...", path.database)

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{
		Name: path.String(),
	})
	if err == nil {
		log.Info("Database already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Info("Creating database...")
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          path.instanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", path.database),
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create database: %w", err)
		}
		log.Info("Database already exists")
		return nil
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}

	log.Info("Database created successfully")
	return nil
}

func applyDDL(ctx context.Context, log *logrus.Entry, path databasePath, recreate bool) error {
	statements, err := migrationDDL(recreate)
	if err != nil {
		return err
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	log.Infof("Applying %d DDL statements...", len(statements))
	op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   path.String(),
		Statements: statements,
	})
	if err != nil {
		return fmt.Errorf("failed to start DDL update: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to apply DDL: %w", err)
	}
	return nil
}
