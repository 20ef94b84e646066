package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the operator CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gtm-copilot-configure",
		Short:         "Operator tool for the GTM Copilot API",
		Long:          "CLI tool for inspecting the CORS policy and probing a running server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewCorsCmd())
	rootCmd.AddCommand(NewHealthCmd())

	return rootCmd
}
