package app

import (
	"github.com/spf13/cobra"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/daemon"
)

func init() { //nolint: gochecknoinits
	createAdminCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "Username for the admin account")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password for the admin account")

	_ = createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createAdminCmd)
}

var (
	adminUsername string
	adminPassword string

	createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create or update an admin panel user",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return daemon.CreateAdmin(&cfg, adminUsername, adminPassword)
		},
	}
)
