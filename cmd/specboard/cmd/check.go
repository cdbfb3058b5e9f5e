package cmd

import (
	"encoding/json"

	"github.com/nfrund/specboard/internal/catalog"
	"github.com/nfrund/specboard/internal/storage"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print which well-known modules exist",
	Long:  `Print the same presence report as GET /api/check for the configured modules directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		svc := catalog.NewService(storage.NewDiskStore(cfg.GetModulesDir()))

		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(svc.Presence(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
