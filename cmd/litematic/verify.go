package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/litematic/litematic"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a schematic has the expected top-level structure",
		Long: `The verify command loads a schematic and reports whether Version,
MinecraftDataVersion, Metadata and Regions are present. The check is
advisory and exits successfully either way.

Example:
  litematic verify house.litematic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
}

func runVerify(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	missing := litematic.MissingKeys(s.doc)
	fingerprint, err := litematic.Fingerprint(s.doc, ioOptions()...)
	if err != nil {
		return err
	}

	if jsonOut {
		if missing == nil {
			missing = []string{}
		}
		return printJSON(map[string]any{
			"file":        s.path,
			"mode":        s.mode.String(),
			"ok":          len(missing) == 0,
			"missing":     missing,
			"fingerprint": fingerprint,
		})
	}

	printInfo("File: %s\n", s.path)
	printInfo("Container: %s\n", s.mode)
	printInfo("Fingerprint: %016x\n", fingerprint)
	if len(missing) == 0 {
		printOK("✓ Structure OK\n")
	}

	return nil
}
