package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/litematic/internal/config"
	"github.com/arloliu/litematic/litematic"
)

var (
	applyRulesPath string
	applyDryRun    bool
	applyNoBackup  bool
)

func init() {
	cmd := newApplyCmd()
	cmd.Flags().StringVar(&applyRulesPath, "rules", "", "YAML file with a rules list, instead of the config file")
	cmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Report the changes without saving")
	cmd.Flags().BoolVar(&applyNoBackup, "no-backup", false, "Do not back up the file before saving")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file>",
		Short: "Apply a list of block replacement rules",
		Long: `The apply command runs every rule of the configuration file (or of the
file given with --rules) in order, then saves once. A rule sees the result
of the rules before it.

Example rules file:
  rules:
    - from: dirt
      to: granite
    - from: oak_planks
      to: spruce_planks

Example:
  litematic apply house.litematic --rules swaps.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
}

func runApply(args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return errors.New("no rules configured")
	}

	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	results, err := litematic.ApplyRules(s.doc, rules)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		total += len(r.Replacements)
		printInfo("%s -> %s: %d\n", r.Rule.From, r.Rule.To, len(r.Replacements))
	}

	if !applyDryRun && total > 0 {
		if err := s.save(cfg.Backup.Enabled && !applyNoBackup); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(applySummary(s.path, results, total))
	}
	if applyDryRun || total == 0 {
		printInfo("File not modified\n")
		return nil
	}
	printOK("✓ Replaced %d entries\n", total)

	return nil
}

// loadRules returns the rules of --rules, or of the loaded config.
func loadRules() ([]litematic.Rule, error) {
	if applyRulesPath == "" {
		return cfg.NormalizedRules(), nil
	}

	file, err := config.Load(applyRulesPath)
	if err != nil {
		return nil, err
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("%s: no rules", applyRulesPath)
	}
	file.Namespace = cfg.Namespace

	return file.NormalizedRules(), nil
}

func applySummary(path string, results []litematic.RuleResult, total int) map[string]any {
	rules := make([]map[string]any, 0, len(results))
	for _, r := range results {
		rules = append(rules, map[string]any{
			"from":     r.Rule.From,
			"to":       r.Rule.To,
			"replaced": len(r.Replacements),
		})
	}

	return map[string]any{
		"file":     path,
		"rules":    rules,
		"replaced": total,
		"dryRun":   applyDryRun,
	}
}
