package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lectern/internal/ingest"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import recording documents into the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			importer := ingest.NewImporter(st, nil)
			for _, path := range args {
				id, err := importer.ImportFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s as recording %s\n", path, id)
			}
			return nil
		},
	}
}
