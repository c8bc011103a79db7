// Package cmd provides the CLI commands for unitcalc.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unitcalc/core/catalog"
	"unitcalc/core/expression"
	"unitcalc/core/format"
	"unitcalc/core/ui"
	"unitcalc/internal/config"
	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile  string
	verbose  bool
	notation string
	noColor  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "unitcalc",
	Short: "Evaluate unit-aware arithmetic expressions",
	Long: `unitcalc evaluates arithmetic expressions whose values carry physical units.

Unit symbols are quantities of one unit, so 3*km is three kilometers.
Additions check dimensions, products and quotients compose units.

Examples:
  unitcalc eval "6*m / (3*s)"
  unitcalc eval "1*km + 500*m" "hex(255)"
  unitcalc repl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.unitcalc.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&notation, "format", "f", "", "default notation (bin, dec, exp, hex, oct, si)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if notation != "" {
		cfg.Format.Default = notation
	}
	if noColor {
		cfg.Format.NoColor = true
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newEvaluator builds an evaluator from the loaded configuration
func newEvaluator(cfg *config.Config) (*expression.Evaluator, error) {
	hint, ok := format.Lookup(cfg.Format.Default)
	if !ok {
		return nil, errors.Config("unknown notation "+cfg.Format.Default, nil)
	}
	if cfg.Format.Precision >= 0 {
		hint = hint.WithPrecision(cfg.Format.Precision)
	}

	return expression.New(catalog.Default(),
		expression.WithUserScales(cfg.Units.UserScales),
		expression.WithFormat(hint),
		expression.WithMaxWorkers(cfg.Eval.MaxWorkers),
	), nil
}

func newWriter(cmd *cobra.Command, cfg *config.Config) *ui.Writer {
	return ui.NewWriter(cmd.OutOrStdout(), cfg.Format.NoColor)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "unitcalc version %s\n", version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := config.Default().Save(path); err != nil {
			return errors.Config("failed to write config", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
