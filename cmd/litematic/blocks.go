package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/litematic/litematic"
)

func init() {
	rootCmd.AddCommand(newBlocksCmd())
}

func newBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks <file>",
		Short: "List the distinct blocks used by a schematic",
		Long: `The blocks command prints every block identifier found in the palettes
of all regions, sorted and numbered. The numbers can be used with replace.

Example:
  litematic blocks house.litematic
  litematic blocks house.litematic --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(args)
		},
	}
}

func runBlocks(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	names, err := litematic.ListBlockNames(s.doc)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":   s.path,
			"mode":   s.mode.String(),
			"blocks": names,
		})
	}

	printBlockList(names)

	return nil
}

// printBlockList prints names as a 1-based numbered list.
func printBlockList(names []string) {
	if len(names) == 0 {
		printInfo("No blocks found\n")
		return
	}

	printInfo("Blocks (%d):\n", len(names))
	for i, name := range names {
		if !textOut() {
			continue
		}
		numColor.Fprintf(stdout, "%4d. ", i+1)
		nameColor.Fprintln(stdout, name)
	}
}
