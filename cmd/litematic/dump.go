package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/litematic/nbt"
)

var dumpCompact bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpCompact, "compact", false, "Print the tree on a single line")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the whole tag tree as SNBT",
		Long: `The dump command prints the decoded tag tree in the game's stringified
form, one entry per line.

Example:
  litematic dump house.litematic
  litematic dump house.litematic --compact`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	if dumpCompact {
		printInfo("%s\n", nbt.Format(s.doc.Root))
	} else {
		printInfo("%s\n", nbt.FormatIndent(s.doc.Root, "  "))
	}

	return nil
}
