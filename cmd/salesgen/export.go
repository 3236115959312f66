package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) exportCmd() *cobra.Command {
	output := "dataset.xlsx"

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset rows to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			c.cfg.Output = output
			opts, err := c.setup()
			if err != nil {
				return err
			}
			defer opts.Close()

			sink, d, err := opts.WorkbookSink(ctx, c.stdout)
			if err != nil {
				return err
			}
			if _, err := c.generate(ctx, opts, d, sink); err != nil {
				return err
			}
			return opts.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "Destination: -, a file path or gs://bucket/object")
	return cmd
}
