package cli

import (
	"github.com/spf13/cobra"

	"github.com/authcorp/lenskit/protocol/duck"
)

func (a *app) duckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duck",
		Short: "Show default and overridden capability methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			duck.Introduce(out, duck.Duck{})
			duck.Introduce(out, duck.Mallard{})
			return nil
		},
	}
}
