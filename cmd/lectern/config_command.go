package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lectern/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and scaffold configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			if err := config.CreateSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "data_dir:     %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(out, "import_dir:   %s\n", cfg.Paths.ImportDir)
			fmt.Fprintf(out, "log_dir:      %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "api_bind:     %s\n", cfg.Paths.APIBind)
			fmt.Fprintf(out, "max_segments: %d\n", cfg.Export.MaxSegments)
			fmt.Fprintf(out, "formats:      %v\n", cfg.Export.Formats)
			fmt.Fprintf(out, "window_size:  %d\n", cfg.Captions.WindowSize)
			fmt.Fprintf(out, "log_format:   %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "log_level:    %s\n", cfg.Logging.Level)
			return nil
		},
	})

	return cmd
}
