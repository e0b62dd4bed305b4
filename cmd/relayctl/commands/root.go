package commands

import (
	"github.com/spf13/cobra"

	"e2e_relay/internal/relayclient"
)

var (
	relayURL string
	client   *relayclient.Client
)

func Execute() error {
	root := &cobra.Command{
		Use:          "relayctl",
		Short:        "Talk to an encrypted-message relay",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = relayclient.New(relayURL)
		},
	}

	root.PersistentFlags().StringVar(&relayURL, "relay", "http://localhost:9090", "relay base URL")

	root.AddCommand(registerCmd(), usersCmd(), sendCmd(), fetchCmd(), watchCmd())
	return root.Execute()
}
