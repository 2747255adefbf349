package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgPath  string
	logLevel string

	cfg Config
	log *slog.Logger
	out io.Writer
}

// newRootCmd wires the command tree. Config and logger are set up in
// PersistentPreRunE so every subcommand sees them.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "evenbins",
		Short:         "Even multiway partitioning and information-preserving binning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(newPartitionCmd(a), newBinCmd(a))

	return root
}

// setup loads the config and builds the stderr logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.out = cmd.OutOrStdout()
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.log.Debug("configuration loaded",
		"path", a.cfgPath,
		"bins", cfg.Bins,
		"order", cfg.Order,
		"max_weights", cfg.MaxWeights,
		"max_leaves", cfg.MaxLeaves,
	)

	return nil
}
