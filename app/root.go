// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tablecraft",
	Short: "Tablecraft is a multi-tenant restaurant website builder",
	Long: `Tablecraft is a multi-tenant restaurant website builder that hosts
content-managed marketing sites, the JSON APIs backing the visual editor,
and a review/analytics dashboard for each tenant.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
