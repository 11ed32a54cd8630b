package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lectern/internal/daemon"
	"lectern/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the lectern daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			d, err := daemon.New(cfg, st, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := d.Start(runCtx); err != nil {
				return err
			}
			<-runCtx.Done()
			d.Stop()
			return nil
		},
	}
}
