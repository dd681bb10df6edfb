// Package cli provides the quasi command-line host program. The core model
// stays pure; everything stateful here (ledger, config, logging) belongs to
// the host, not the state contract.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/quasi/internal/config"
	"github.com/talgya/quasi/internal/ledger"
)

var (
	cfgFile    string
	ledgerFlag string
	cfg        *config.Config
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quasi",
		Short: "quasi - toy quantum-like dual value states",
		Long: `quasi models a paired numeric duality under one label: two magnitudes,
a derived coherence score, and a one-way superposed-to-observed lifecycle.

States created here are kept in a local SQLite ledger so they can be
observed, inverted, and listed across invocations.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}

			setupLogging(cfg.LogLevel)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default quasi.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&ledgerFlag, "ledger", "", "ledger database path (overrides config)")

	rootCmd.AddCommand(
		newDemoCmd(),
		newNewCmd(),
		newShowCmd(),
		newObserveCmd(),
		newInvertCmd(),
		newCoherenceCmd(),
		newListCmd(),
		newLogCmd(),
		newGenCmd(),
	)

	return rootCmd
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
}

// openLedger opens the ledger at the flag path when given, the configured
// path otherwise.
func openLedger() (*ledger.DB, error) {
	path := cfg.LedgerPath
	if ledgerFlag != "" {
		path = ledgerFlag
	}
	return ledger.Open(path)
}
