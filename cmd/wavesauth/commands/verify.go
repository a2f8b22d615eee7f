package commands

import (
	"errors"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

var (
	errInvalidSignature = errors.New("signature is not valid")
	errAddressMismatch  = errors.New("address does not belong to the public key")
	errInvalidAddress   = errors.New("address is not valid")
)

func verifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a wallet auth response",
		Long: "Verify the signature of a wallet auth response. With --address the\n" +
			"address is also checked against the public key and its checksum.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pub := a.v.GetString("pubkey")
			host := a.v.GetString("host")

			ok, err := a.auth.Verify(pub, a.v.GetString("signature"), host, a.v.GetString("data"))
			if err != nil {
				return err
			}
			if !ok {
				level.Warn(a.logger).Log("msg", "signature rejected", "pubkey", pub, "host", host)
				return errInvalidSignature
			}

			if addr := a.v.GetString("address"); addr != "" {
				derived, err := a.auth.AddressFromBase58(pub)
				if err != nil {
					return err
				}
				if derived != addr {
					level.Warn(a.logger).Log("msg", "address mismatch", "want", derived, "got", addr)
					return errAddressMismatch
				}
				valid, err := a.auth.IsValidAddress(addr)
				if err != nil {
					return err
				}
				if !valid {
					return errInvalidAddress
				}
			}

			level.Info(a.logger).Log("msg", "signature verified", "pubkey", pub, "host", host)
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	cmd.Flags().String("pubkey", "", "base58 public key")
	cmd.Flags().String("signature", "", "base58 signature")
	cmd.Flags().String("host", "", "host the wallet signed for")
	cmd.Flags().String("data", "", "data the wallet signed")
	cmd.Flags().String("address", "", "base58 address returned with the signature")
	return cmd
}
