package main

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-gradebook/internal/configuration"
)

// app carries state resolved once per invocation by the root command.
type app struct {
	configPath string
	logLevel   string

	cfg    *configuration.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "gradebook",
		Short:        "Grade scores and add integers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.SetFlagErrorFunc(flagError)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newGradeCmd(a),
		newAddCmd(),
		newWorkerCmd(a),
		newSubmitCmd(a),
	)
	return root
}

// negativeNumberFlag matches pflag's complaint about a negative operand such as -3.
var negativeNumberFlag = regexp.MustCompile(`unknown shorthand flag: '\d' in -\d+`)

// flagError points users at "--" when a negative operand was parsed as a flag.
func flagError(cmd *cobra.Command, err error) error {
	if negativeNumberFlag.MatchString(err.Error()) {
		return fmt.Errorf("%w (put -- before negative operands: %s -- -3 7)", err, cmd.CommandPath())
	}
	return err
}

// init loads configuration and builds the process logger.
func (a *app) init(logOut io.Writer) error {
	cfg, err := configuration.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	a.cfg = cfg
	a.logger = newLogger(cfg.Logging, logOut)
	return nil
}

func newLogger(cfg configuration.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
