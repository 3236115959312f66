package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errMissingTarget = errors.New("--target is required")

func (c *cli) loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Generate the dataset straight into a database",
		Long: `Generates the dataset and executes it against the target database:
  sqlite    database/sql on modernc.org/sqlite, --dsn is a file path
  mysql     GORM, --dsn is a go-sql-driver DSN (user:pass@tcp(host:3306)/db)
  postgres  pgx COPY, --dsn is a connection URL
  spanner   mutations, --dsn is projects/P/instances/I/databases/D (run migrate first)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			if c.cfg.Target == "" {
				return errMissingTarget
			}
			opts, err := c.setup()
			if err != nil {
				return err
			}
			defer opts.Close()

			sink, d, err := opts.LoadSink(ctx)
			if err != nil {
				return err
			}
			summary, err := c.generate(ctx, opts, d, sink)
			if err != nil {
				return err
			}

			if c.cfg.Verify {
				report, err := opts.VerifyLoad(ctx, summary.Rows())
				if report != nil {
					opts.Logger.WithFields(logrus.Fields{
						"rows":     report.Rows,
						"dangling": report.Dangling,
					}).Info("load verification")
				}
				if err != nil {
					return err
				}
			}
			return opts.Close()
		},
	}

	cmd.Flags().StringVar(&c.cfg.Target, "target", c.cfg.Target, "Target database: sqlite, mysql, postgres or spanner")
	cmd.Flags().StringVar(&c.cfg.DSN, "dsn", c.cfg.DSN, "Connection string for the target")
	cmd.Flags().BoolVar(&c.cfg.Verify, "verify", c.cfg.Verify, "Check row counts and foreign keys after loading (spanner)")
	return cmd
}
