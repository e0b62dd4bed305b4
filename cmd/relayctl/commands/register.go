package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [username]",
		Short: "Claim a username on the relay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Register(args[0]); err != nil {
				return err
			}
			fmt.Printf("Registered %s\n", args[0])
			return nil
		},
	}
	return cmd
}
