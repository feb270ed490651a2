// Package cmd provides the CLI commands for finance-calculators.
package cmd

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand.
type app struct {
	version    string
	configPath string
	logLevel   string

	conf   *config.Configuration
	logger *zap.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:   "finance-calculators",
		Short: "Korean personal finance calculators",
		Long: `finance-calculators serves dividend, compound interest, stock return,
loan interest, and net salary calculators as a web site, and runs the same
calculations from the command line.

Examples:
  finance-calculators serve
  finance-calculators calc dividend investment_amount=1,000,000 dividend_yield=4
  finance-calculators calc --output-format json net-salary annual_salary=5000 dependents=1`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newServeCommand(a),
		newCalcCommand(a),
		newConfigCommand(a),
		newVersionCommand(a),
	)
	return root
}

// load reads the configuration and builds the logger once per invocation.
func (a *app) load() error {
	if a.conf != nil {
		return nil
	}

	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	logger, err := config.NewLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.conf = conf
	a.logger = logger
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
