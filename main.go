////////////////////////////////////////////////////////////////////////////////
// charity_ledger: simulated donation and project allocation contracts
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"charity_ledger/internal/config"
	"charity_ledger/internal/logging"
	"charity_ledger/internal/replay"
	"charity_ledger/sdk"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledgersim",
		Short:         "Replay donation and project allocation calls against an in-memory contract state",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		envFile string
		owner   string
		sender  string
		height  uint64
	)

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a call script, one '<action> <payload>' per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("owner") {
				cfg.Owner = owner
			}
			if cmd.Flags().Changed("sender") {
				cfg.Sender = sender
			}
			if cmd.Flags().Changed("height") {
				cfg.BlockHeight = height
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.AppEnv, cfg.LogLevel)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()

			host := sdk.NewMockSDK(cfg.ContractID, sdk.Address(cfg.Sender), cfg.BlockHeight, logger)
			runner := replay.NewRunner(host, sdk.Address(cfg.Owner))

			logger.Debug().
				Str("owner", cfg.Owner).
				Str("sender", cfg.Sender).
				Uint64("height", cfg.BlockHeight).
				Str("script", args[0]).
				Msg("replay starting")

			outcomes, err := runner.Run(f)
			for _, o := range outcomes {
				fmt.Fprintln(cmd.OutOrStdout(), o.String())
			}
			if err != nil {
				logger.Error().Err(err).Msg("replay aborted")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	cmd.Flags().StringVar(&owner, "owner", "", "project ledger owner (overrides LEDGER_OWNER)")
	cmd.Flags().StringVar(&sender, "sender", "", "initial caller (overrides LEDGER_SENDER)")
	cmd.Flags().Uint64Var(&height, "height", 0, "initial block height (overrides LEDGER_BLOCK_HEIGHT)")
	return cmd
}
