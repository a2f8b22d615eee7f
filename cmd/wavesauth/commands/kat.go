package commands

import (
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-wavesauth/blake2b"
)

func katCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kat <file>",
		Short: "Run a Blake2b known-answer file of in/key/hash triples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			vectors, err := blake2b.ParseKAT(f)
			if err != nil {
				return err
			}

			failed := 0
			for i := range vectors {
				ok, err := vectors[i].Check()
				if err != nil {
					return fmt.Errorf("vector %d: %w", i, err)
				}
				if !ok {
					failed++
					level.Error(a.logger).Log("msg", "vector failed", "index", i, "input_len", len(vectors[i].In))
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d vectors passed\n", len(vectors)-failed, len(vectors))
			if failed > 0 {
				return fmt.Errorf("%d vectors failed", failed)
			}
			return nil
		},
	}
}
