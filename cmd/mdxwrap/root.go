package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/skarn/mdxwrap/internal/utils"
)

const version = "2.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mdxwrap",
		Short:   "MDXfind wrapper for Hashtopolis - hash algorithm identification and cracking",
		Version: version,
		// Errors are reported once by main; cobra must not narrate on top
		// of the wire protocol.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.DisableFlagParsing {
				// The crack command parses its flags manually to collect
				// passthrough tokens, and initializes viper itself.
				return nil
			}
			return initViper(cmd.Flags())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (YAML)")
	flags.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")
	flags.Bool("no-color", false, "Disable colored diagnostics")
	flags.Bool("silent", false, "Suppress non-critical diagnostics")
	flags.String("worker-path", "", "Explicit path to the worker executable")

	rootCmd.AddCommand(newKeyspaceCmd())
	rootCmd.AddCommand(newCrackCmd())
	return rootCmd
}

// initViper wires the precedence chain the flags participate in:
// flag > MDXWRAP_* environment > config file > default.
func initViper(fs *pflag.FlagSet) error {
	if configFile, err := fs.GetString("config"); err == nil && configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	viper.SetEnvPrefix("MDXWRAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return viper.BindPFlags(fs)
}

// newLogger builds the diagnostic logger from the bound settings.
func newLogger() utils.Logger {
	level := utils.StringToLogLevel(viper.GetString("loglevel"))
	return utils.NewDefaultLogger(level, viper.GetBool("no-color"), viper.GetBool("silent"))
}
