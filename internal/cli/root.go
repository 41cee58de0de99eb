// Package cli implements the errcat command, a read-only browser and
// validator for the error catalogue.
package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/StricklySoft/errcatalog/pkg/config"
	"github.com/StricklySoft/errcatalog/pkg/registry"
)

// app is the state shared by subcommands once the root command has
// resolved configuration.
type app struct {
	cfg    Config
	logger *slog.Logger
	reg    *registry.Registry
}

type rootFlags struct {
	configFile string
	output     string
	logLevel   string
	noColor    bool
}

// NewRootCmd returns the errcat root command with every subcommand
// attached. reg is the catalogue the commands browse; pass
// registry.Default() for the compiled-in table.
func NewRootCmd(reg *registry.Registry, version string) *cobra.Command {
	a := &app{reg: reg}
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "errcat",
		Short: "Browse and validate the error catalogue",
		Long: `errcat prints, looks up, and validates the error catalogue: the table
mapping error identifiers to stable numeric codes and message templates.

Configuration is read from --config (YAML or JSON) and ERRCAT_* environment
variables (ERRCAT_OUTPUT, ERRCAT_LOG_LEVEL, ERRCAT_LOG_FORMAT).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "configuration file (.yaml, .yml, or .json)")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "output format: table, json, or yaml")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, or error")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored table output")

	cmd.AddCommand(
		newListCmd(a),
		newLookupCmd(a),
		newFormatCmd(a),
		newBandsCmd(a),
		newValidateCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	loader := config.New().
		WithEnvPrefix(EnvPrefix).
		WithOverrides(map[string]string{
			"OUTPUT":    flags.output,
			"LOG_LEVEL": flags.logLevel,
		})
	if flags.configFile != "" {
		loader = loader.WithFile(flags.configFile)
	}
	if err := loader.Load(&a.cfg); err != nil {
		return err
	}

	logger, err := NewLogger(a.cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger.With("command", cmd.Name())

	if flags.noColor {
		pterm.DisableStyling()
	}
	if a.reg == nil {
		a.reg = registry.Default()
	}
	a.logger.Debug("configuration resolved",
		"output", a.cfg.Output,
		"definitions", a.reg.Len(),
	)
	return nil
}

// resolve finds the definition named by arg, which is either an
// identifier or a decimal code.
func (a *app) resolve(arg string) (registry.Definition, error) {
	if code, err := strconv.Atoi(arg); err == nil {
		if d, ok := a.reg.LookupByCode(code); ok {
			return d, nil
		}
		a.logger.Debug("code not catalogued", "code", code)
		return registry.Definition{}, fmt.Errorf("no catalogue entry with code %d", code)
	}
	if d, ok := a.reg.LookupByIdentifier(arg); ok {
		return d, nil
	}
	a.logger.Debug("identifier not catalogued", "identifier", arg)
	return registry.Definition{}, fmt.Errorf("no catalogue entry with identifier %q", arg)
}
