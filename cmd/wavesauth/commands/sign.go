package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-wavesauth/base58"
)

func signCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign an auth message for host and data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := base58.Decode(a.v.GetString("private-key"))
			if err != nil {
				return fmt.Errorf("failed to decode private key: %w", err)
			}

			sig, err := a.auth.Sign(priv, a.v.GetString("host"), a.v.GetString("data"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}

	cmd.Flags().String("private-key", "", "base58 private key")
	cmd.Flags().String("host", "", "host to sign for")
	cmd.Flags().String("data", "", "data to sign")
	return cmd
}
