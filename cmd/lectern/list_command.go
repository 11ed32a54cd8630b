package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored recordings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			summaries, err := st.ListRecordings(cmd.Context())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recordings.")
				return nil
			}

			headers := []string{"ID", "Room", "Title", "Created", "Transcriptions", "Translations", "Languages"}
			rows := make([][]string, 0, len(summaries))
			for _, summary := range summaries {
				created := ""
				if !summary.CreatedAt.IsZero() {
					created = summary.CreatedAt.Local().Format(time.DateTime)
				}
				rows = append(rows, []string{
					summary.ID,
					summary.Room,
					summary.Title,
					created,
					strconv.Itoa(summary.TranscriptionCount),
					strconv.Itoa(summary.TranslationCount),
					strings.Join(summary.Languages, ", "),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}
}
