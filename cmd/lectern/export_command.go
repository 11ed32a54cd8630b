package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lectern/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		langFlag   string
		formatFlag string
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "export <recording-id>",
		Short: "Export a recording's captions for one language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			svc := export.NewService(st, cfg, nil, nil)
			result, err := svc.Export(cmd.Context(), args[0], langFlag, formatFlag)
			if err != nil {
				return err
			}

			path := outputFlag
			if path == "" {
				path = result.Filename
			}
			if path == "-" {
				_, err := cmd.OutOrStdout().Write(result.Content)
				return err
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			if err := os.WriteFile(path, result.Content, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cues to %s", result.CueCount, path)
			if result.DroppedSegments > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d malformed segments skipped)", result.DroppedSegments)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&langFlag, "language", "l", "", "Translation language code")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "srt", "Output format (srt, vtt, txt)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path, or - for stdout")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}
