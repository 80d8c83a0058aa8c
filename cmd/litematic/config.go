package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newConfigCmd())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `The config command prints the configuration in use after the file given
with --config (or .litematic.yaml) has been merged with the defaults. The
output is a valid configuration file.

Example:
  litematic config > .litematic.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig()
		},
	}
}

func runConfig() error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)

	return err
}
