package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"e2e_relay/internal/model"
)

// watch stays subscribed and prints messages as the relay forwards them.
func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [username]",
		Short: "Stream messages as they arrive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Watch(cmd.Context(), args[0], func(m model.Message) error {
				fmt.Printf("[%s] %s\n", m.Sender, m.Encrypted)
				return nil
			})
		},
	}
	return cmd
}
