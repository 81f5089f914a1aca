package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"bisub/internal/logging"
	"bisub/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the merge and check API over HTTP",
		Long: `Serve runs the HTTP API in the foreground until interrupted.

Set server.token in the config file (or export BISUB_API_TOKEN) to require a
bearer token on the merge and check endpoints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if bind := strings.TrimSpace(bindFlag); bind != "" {
				if _, _, err := net.SplitHostPort(bind); err != nil {
					return fmt.Errorf("--bind %q must be host:port: %w", bind, err)
				}
				cfg.Server.Bind = bind
			}

			logger, closer, err := logging.NewServerLogger(cfg)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			defer closer.Close()

			srv, err := server.New(cfg, logger, version)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Start(runCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bisub %s listening on http://%s\n", version, srv.Addr())

			<-runCtx.Done()
			srv.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Listen address (host:port), overrides server.bind")
	return cmd
}
