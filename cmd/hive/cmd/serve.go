package cmd

import (
	"github.com/nfrund/hive/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long: `Loads the configuration from the environment (and .env when present),
connects to the auth provider and row store, and serves the dashboard until
interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.New(cmd.Context())
		if err != nil {
			return err
		}
		return s.Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
