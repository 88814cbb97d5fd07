package main

import (
	"github.com/spf13/cobra"

	"symck/internal/config"
)

// loadOptions resolves the checker options for this invocation: the
// TOML file named by --config if one was given, otherwise the built-in
// defaults.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Options{}, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
