package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-wavesauth"
)

func messageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Print the hex auth message for host and data, or decode one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if encoded := a.v.GetString("decode"); encoded != "" {
				b, err := hex.DecodeString(encoded)
				if err != nil {
					return fmt.Errorf("failed to decode message: %w", err)
				}
				host, data, err := wavesauth.ParseMessage(b)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "host: %s\ndata: %s\n", host, data)
				return nil
			}

			m, err := wavesauth.Message(a.v.GetString("host"), a.v.GetString("data"))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, hex.EncodeToString(m))
			return nil
		},
	}

	cmd.Flags().String("host", "", "host")
	cmd.Flags().String("data", "", "data")
	cmd.Flags().String("decode", "", "hex message to decode")
	return cmd
}
