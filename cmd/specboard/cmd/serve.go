package cmd

import (
	"log/slog"

	"github.com/nfrund/specboard/internal/config"
	"github.com/nfrund/specboard/internal/logging"
	"github.com/nfrund/specboard/internal/server"
	"github.com/spf13/cobra"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		logging.New(cfg)

		s, err := server.New(server.Dependencies{Config: cfg})
		if err != nil {
			slog.Error("Failed to create server", "error", err)
			return err
		}
		s.RegisterRoutes()
		return s.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", config.DefaultAddr, "address to listen on")
	rootCmd.AddCommand(serveCmd)
}
