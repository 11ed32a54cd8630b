package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lectern/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported caption languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"Code", "Name", "Flag"}
			rows := make([][]string, 0)
			for _, lang := range language.Supported() {
				rows = append(rows, []string{lang.Code, lang.Name, lang.Flag})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}
}
