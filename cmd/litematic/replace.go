package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/litematic"
	"github.com/arloliu/litematic/nbt"
)

var (
	replaceDryRun      bool
	replaceYes         bool
	replaceNoBackup    bool
	replaceCompression string
)

func init() {
	cmd := newReplaceCmd()
	cmd.Flags().BoolVar(&replaceDryRun, "dry-run", false, "Show the palette changes without saving")
	cmd.Flags().BoolVarP(&replaceYes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&replaceNoBackup, "no-backup", false, "Do not back up the file before saving")
	cmd.Flags().StringVar(&replaceCompression, "backup-compression", "",
		"Backup codec (none, gzip, zstd, s2, lz4), overrides the config file")
	rootCmd.AddCommand(cmd)
}

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <file> [old] [new]",
		Short: "Replace one block with another in every region palette",
		Long: `The replace command rewrites every palette entry named old to new.
Block properties are kept. Names without a namespace get the configured one
(minecraft by default). old may also be the number shown by the blocks
command. When old or new is omitted, they are asked for interactively.

Example:
  litematic replace house.litematic dirt granite
  litematic replace house.litematic 2 minecraft:granite --yes
  litematic replace house.litematic dirt granite --dry-run`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args)
		},
	}
}

func runReplace(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	names, err := litematic.ListBlockNames(s.doc)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		printInfo("No blocks found\n")
		return nil
	}

	in := bufio.NewReader(stdin)

	oldInput := argAt(args, 1)
	if oldInput == "" {
		printBlockList(names)
		if oldInput, err = prompt(in, "Block to replace (number or name): "); err != nil {
			return err
		}
	}
	oldName, err := litematic.SelectBlock(names, oldInput, cfg.Namespace)
	if err != nil {
		return err
	}

	newInput := argAt(args, 2)
	if newInput == "" {
		if newInput, err = prompt(in, "Replace with: "); err != nil {
			return err
		}
	}
	newName := litematic.NormalizeBlockName(newInput, cfg.Namespace)
	if newName == "" {
		return fmt.Errorf("empty replacement block name")
	}

	var before *nbt.Document
	if replaceDryRun {
		root, _ := nbt.Clone(s.doc.Root).(*nbt.Compound)
		before = nbt.NewDocument(s.doc.Name, root, s.doc.Mode)
	}

	reps, err := litematic.Replace(s.doc, oldName, newName)
	if err != nil {
		return err
	}

	if replaceDryRun {
		return reportDryRun(before, s.doc, oldName, newName, reps)
	}

	printInfo("%s -> %s: %d palette entries\n", oldName, newName, len(reps))
	for _, r := range reps {
		printVerbose("  %s[%d]\n", r.Region, r.Index)
	}
	if len(reps) == 0 {
		return finishReplace(s.path, oldName, newName, reps)
	}

	if !replaceYes {
		ok, err := confirm(in, fmt.Sprintf("Save changes to %s?", s.path))
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Aborted, file not modified\n")
			return nil
		}
	}

	if replaceCompression != "" {
		if _, err := format.ParseCompressionType(replaceCompression); err != nil {
			return err
		}
		cfg.Backup.Compression = replaceCompression
	}

	if err := s.save(cfg.Backup.Enabled && !replaceNoBackup); err != nil {
		return err
	}

	return finishReplace(s.path, oldName, newName, reps)
}

func finishReplace(path, oldName, newName string, reps []litematic.Replacement) error {
	if jsonOut {
		return printJSON(replaceResult(path, oldName, newName, reps))
	}
	if len(reps) > 0 {
		printOK("✓ Replaced %d entries\n", len(reps))
	}

	return nil
}

func reportDryRun(before, after *nbt.Document, oldName, newName string, reps []litematic.Replacement) error {
	if jsonOut {
		return printJSON(replaceResult("", oldName, newName, reps))
	}

	diff, err := paletteDiff(before, after)
	if err != nil {
		return err
	}

	printInfo("%s -> %s: %d palette entries (dry run)\n", oldName, newName, len(reps))
	printInfo("%s", diff)

	return nil
}

func replaceResult(path, oldName, newName string, reps []litematic.Replacement) map[string]any {
	out := map[string]any{
		"from":     oldName,
		"to":       newName,
		"replaced": len(reps),
		"dryRun":   replaceDryRun,
	}
	if path != "" {
		out["file"] = path
	}

	return out
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
