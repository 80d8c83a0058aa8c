package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/litematic"
)

var restoreCompression string

func init() {
	cmd := newRestoreCmd()
	cmd.Flags().StringVar(&restoreCompression, "backup-compression", "",
		"Codec the backup was written with, overrides the config file")
	rootCmd.AddCommand(cmd)
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a schematic from its backup",
		Long: `The restore command overwrites a schematic with the backup written by
replace or apply.

Example:
  litematic restore house.litematic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(args)
		},
	}
}

func runRestore(args []string) error {
	path := args[0]

	name := cfg.Backup.Compression
	if restoreCompression != "" {
		name = restoreCompression
	}
	compression, err := format.ParseCompressionType(name)
	if err != nil {
		return err
	}

	printVerbose("Restoring from %s\n", litematic.BackupPath(path, compression))
	if err := litematic.Restore(path, compression); err != nil {
		return err
	}
	printOK("✓ Restored %s\n", path)

	return nil
}
