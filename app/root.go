// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "feedsite",
	Short: "feedsite is the GarantiCo marketing website and content backend",
	Long: `feedsite serves the multilingual GarantiCo marketing website together
with the admin panel and JSON API used to manage products, categories,
navigation, inquiries and editable page content.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
