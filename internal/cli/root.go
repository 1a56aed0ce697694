// Package cli implements the thai-lotto command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/config"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/glo"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/logger"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/predict"
)

const defaultConfigPath = "configs/config.yaml"

// RootOptions carries the global flags and the loaded configuration into
// every subcommand.
type RootOptions struct {
	ConfigPath string
	Debug      bool
	JSON       bool

	Config *config.Config
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "thai-lotto",
		Short:         "Two-digit Thai lottery prediction engine",
		Long:          "Ranks two-digit candidates for the next Thai lottery draw from cultural bias numbers and the stored draw history, syncing published results on the way.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Debug {
				level = slog.LevelDebug
			}
			// Logs go to stderr so --json output stays parseable.
			logger.Init(&logger.Options{
				Level:      level,
				Writer:     os.Stderr,
				TimeFormat: time.RFC3339,
			})

			cfg, err := loadConfig(opts.ConfigPath, c.Root().PersistentFlags().Changed("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.Config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfigPath, "Path to configuration file")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Emit JSON instead of text")

	cmd.AddCommand(NewPredictCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewBackfillCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// loadConfig reads the file at path. When the flag was left at its default
// and nothing exists there, the built-in defaults apply; an explicitly named
// file must exist.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func newService(opts *RootOptions) *predict.Service {
	store := history.Open(opts.Config.Store.Path)
	client := glo.NewClient(opts.Config.API.BaseURL, opts.Config.API.RequestTimeout)
	return predict.NewService(store, client, predict.WeightsFromConfig(opts.Config.Engine))
}
