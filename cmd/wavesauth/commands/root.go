package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/athanorlabs/go-wavesauth"
)

const envPrefix = "WAVESAUTH"

const (
	flagConfig   = "config"
	flagBackend  = "backend"
	flagChainID  = "chain-id"
	flagLogLevel = "log-level"

	backendNative    = "native"
	backendReference = "reference"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	v      *viper.Viper
	logger log.Logger
	auth   *wavesauth.Auth
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: log.NewNopLogger(),
	}

	root := &cobra.Command{
		Use:           "wavesauth",
		Short:         "Verify and produce Waves wallet authentication signatures",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String(flagConfig, "", "config file (yaml, toml or json)")
	root.PersistentFlags().String(flagBackend, backendNative, "primitives backend: native or reference")
	root.PersistentFlags().String(flagChainID, string(wavesauth.MainnetChainID), "address chain id (W mainnet, T testnet)")
	root.PersistentFlags().String(flagLogLevel, "info", "log level: debug, info, warn or error")

	root.AddCommand(
		verifyCmd(a),
		addressCmd(a),
		validateCmd(a),
		keygenCmd(a),
		signCmd(a),
		messageCmd(a),
		katCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if file := a.v.GetString(flagConfig); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(flagLogLevel))
	if err != nil {
		return err
	}
	a.logger = logger

	var opts []wavesauth.Option
	backend := a.v.GetString(flagBackend)
	switch backend {
	case backendNative:
	case backendReference:
		opts = append(opts, wavesauth.WithReferenceBackend())
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	chainID := a.v.GetString(flagChainID)
	if len(chainID) != 1 {
		return fmt.Errorf("chain id must be a single byte, got %q", chainID)
	}
	opts = append(opts, wavesauth.WithChainID(chainID[0]))

	a.auth = wavesauth.New(opts...)
	level.Debug(a.logger).Log("msg", "configured", "backend", backend, "chain_id", chainID)
	return nil
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var allow level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, allow), nil
}
