// Package cli wires the concierge commands: a webhook server and a local
// interactive chat for trying the bot without the messaging platform.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "concierge" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "concierge",
		Short: "Salon conversational assistant",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (optional)")

	root.AddCommand(
		newServeCmd(&configPath),
		newChatCmd(&configPath),
	)

	return root
}
