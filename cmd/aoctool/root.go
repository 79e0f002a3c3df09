package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "aoctool",
		Short: "Puzzle helpers: digits, number theory, CRT, grid search",
		Long: `aoctool runs the aoclib helpers against numbers and puzzle input files.
Results go to stdout; logs go to stderr as JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"YAML config file (grid symbols, log level)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"debug, info, warn or error; overrides the config file")

	rootCmd.AddCommand(
		a.digitsCmd(),
		a.gcdCmd(),
		a.lcmCmd(),
		a.modpowCmd(),
		a.modinvCmd(),
		a.crtCmd(),
		a.busCmd(),
		a.pathCmd(),
		a.turnCmd(),
		a.walkCmd(),
	)

	return rootCmd
}

// setup loads the config and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	a.log = logger.With(zap.String("cmd", cmd.Name()))
	a.log.Debug("config loaded", zap.String("path", a.configPath), zap.String("level", level))

	return nil
}
