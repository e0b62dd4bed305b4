package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fetch drains the mailbox: fetched messages are removed on the relay.
func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [username]",
		Short: "Fetch and purge your queued messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := client.Fetch(args[0])
			if err != nil {
				return err
			}
			for _, m := range msgs {
				fmt.Printf("[%s] %s\n", m.Sender, m.Encrypted)
			}
			return nil
		},
	}
	return cmd
}
