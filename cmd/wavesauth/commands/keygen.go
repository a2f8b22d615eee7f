package commands

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-wavesauth"
	"github.com/athanorlabs/go-wavesauth/base58"
	"github.com/athanorlabs/go-wavesauth/types"
)

var errConflictingSeeds = errors.New("--seed-phrase and --seed-hex are mutually exclusive")

func keygenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive a key pair",
		Long: "Derive a key pair from a seed phrase, from a 32-byte hex seed, or\n" +
			"from a fresh random seed when neither is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			phrase := a.v.GetString("seed-phrase")
			seedHex := a.v.GetString("seed-hex")

			var (
				kp  *types.KeyPair
				err error
			)
			switch {
			case phrase != "" && seedHex != "":
				return errConflictingSeeds
			case phrase != "":
				kp, err = a.auth.KeyPairFromSeed(phrase, a.v.GetUint32("nonce"))
			case seedHex != "":
				var seed []byte
				seed, err = hex.DecodeString(seedHex)
				if err != nil {
					return fmt.Errorf("failed to decode seed: %w", err)
				}
				kp, err = a.auth.GenerateKeyPair(seed)
			default:
				var seed []byte
				seed, err = wavesauth.NewSeed()
				if err != nil {
					return err
				}
				level.Info(a.logger).Log("msg", "generated random seed")
				fmt.Fprintf(cmd.OutOrStdout(), "seed: %x\n", seed)
				kp, err = a.auth.GenerateKeyPair(seed)
			}
			if err != nil {
				return err
			}

			addr, err := a.auth.Address(kp.Public[:])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "public_key: %s\n", base58.Encode(kp.Public[:]))
			fmt.Fprintf(out, "private_key: %s\n", base58.Encode(kp.Private[:]))
			fmt.Fprintf(out, "address: %s\n", addr)
			return nil
		},
	}

	cmd.Flags().String("seed-phrase", "", "wallet seed phrase")
	cmd.Flags().Uint32("nonce", 0, "account index within the seed phrase")
	cmd.Flags().String("seed-hex", "", "32-byte seed in hex")
	return cmd
}
