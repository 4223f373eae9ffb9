package main

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-seismic/internal/config"
	"github.com/cwbudde/algo-seismic/internal/logging"
)

// flagKeys maps flags whose viper key is not the flag name with
// underscores.
var flagKeys = map[string]string{
	"sta-window":  "arrival.short_window",
	"lta-window":  "arrival.long_window",
	"sta-trigger": "arrival.trigger",
}

// app carries state resolved before a subcommand runs.
type app struct {
	configFile string
	cfg        config.Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "seismo",
		Short: "Ground-motion intensity measures for acceleration records",
		Long: `seismo filters acceleration records with a Boore high-pass, integrates
them to velocity and displacement and reports PGA/PGV/PGD, bracketed
duration, site frequency, Arias intensity, the Fourier amplitude spectrum,
the STA/LTA arrival and the Newmark-Beta elastic response spectrum.

Settings resolve from flags, SEISMO_* environment variables, the
--config YAML file and built-in defaults, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error, off)")
	pf.String("log-format", "console", "log format (console, json)")

	root.AddCommand(newAnalyzeCmd(a), newPeriodsCmd())
	return root
}

// initialize resolves the configuration for cmd and builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd.Flags(), v); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	return nil
}

// bindFlags binds each flag to its viper key.
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var lastErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "input" || f.Name == "full" || f.Name == "help" {
			return
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			key = strings.ReplaceAll(f.Name, "-", "_")
		}
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
	})
	return lastErr
}
