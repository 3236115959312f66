package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the dataset as a SQL script",
		Long: `Writes DROP, CREATE, DELETE and INSERT statements for the five dataset tables.
The output can be stdout (-), a local file or a Cloud Storage object (gs://bucket/object).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			opts, err := c.setup()
			if err != nil {
				return err
			}
			defer opts.Close()

			sink, d, err := opts.ScriptSink(ctx, c.stdout)
			if err != nil {
				return err
			}
			if _, err := c.generate(ctx, opts, d, sink); err != nil {
				return err
			}
			return opts.Close()
		},
	}

	cmd.Flags().StringVarP(&c.cfg.Output, "output", "o", c.cfg.Output, "Destination: -, a file path or gs://bucket/object")
	cmd.Flags().IntVar(&c.cfg.ExtendedInsert, "extended-insert", c.cfg.ExtendedInsert, "Rows per INSERT statement; 0 or 1 writes one row per statement")
	return cmd
}
