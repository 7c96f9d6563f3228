package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-certform/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the certification page and JSON API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := server.New(ctx, cfg, log)
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, for example :8080")
	serveCmd.Flags().Duration("session-ttl", 0, "idle time after which a page session is forgotten")
	serveCmd.Flags().Bool("qr", false, "print a verification QR code on the certificate")
}
