package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// send hands the relay an already-encrypted payload; encrypt before calling.
func sendCmd() *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "send [recipient] [ciphertext]",
		Short: "Queue an encrypted payload for a recipient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Send(sender, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Message queued")
			return nil
		},
	}
	cmd.Flags().StringVar(&sender, "from", "", "sending username")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
