package commands

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func addressCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive the address of a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := a.auth.AddressFromBase58(a.v.GetString("pubkey"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}

	cmd.Flags().String("pubkey", "", "base58 public key")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address>",
		Short: "Check the checksum and chain id of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.auth.IsValidAddress(args[0])
			if err != nil {
				return err
			}
			if !ok {
				level.Debug(a.logger).Log("msg", "address rejected", "address", args[0])
				return errInvalidAddress
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
