package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered usernames",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.ListUsers()
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Printf("%s\t%s\n", u.Username, u.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	return cmd
}
