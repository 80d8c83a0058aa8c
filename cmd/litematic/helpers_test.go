package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/internal/config"
	"github.com/arloliu/litematic/litematic"
	"github.com/arloliu/litematic/nbt"
)

// writeSchematic saves a two-region schematic into a temp dir and returns its path.
//
//	main: air, dirt{snowy:false}, stone
//	roof: air, dirt
func writeSchematic(t *testing.T) string {
	t.Helper()

	state := func(name string) *nbt.Compound {
		return nbt.NewCompound().MustSet("Name", nbt.String(name))
	}
	dirt := state("minecraft:dirt").
		MustSet("Properties", nbt.NewCompound().MustSet("snowy", nbt.String("false")))
	palette := func(states ...nbt.Tag) *nbt.List {
		return nbt.MustList(format.TagCompound, states...)
	}

	root := nbt.NewCompound().
		MustSet("Version", nbt.Int(6)).
		MustSet("MinecraftDataVersion", nbt.Int(3465)).
		MustSet("Metadata", nbt.NewCompound().MustSet("Name", nbt.String("house"))).
		MustSet("Regions", nbt.NewCompound().
			MustSet("main", nbt.NewCompound().
				MustSet("BlockStatePalette", palette(state("minecraft:air"), dirt, state("minecraft:stone")))).
			MustSet("roof", nbt.NewCompound().
				MustSet("BlockStatePalette", palette(state("minecraft:air"), state("minecraft:dirt")))))

	path := filepath.Join(t.TempDir(), "house.litematic")
	require.NoError(t, litematic.Save(nbt.NewDocument("", root, format.ModeGzip), path, format.ModeGzip))

	return path
}

// runCLI executes the root command with args and the given stdin, returning
// stdout and stderr. Global flag state is reset first.
func runCLI(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	verbose, quiet, jsonOut, noColor = false, false, false, false
	logLevel = ""
	cfg = config.Default()
	replaceDryRun, replaceYes, replaceNoBackup, replaceCompression = false, false, false, ""
	applyRulesPath, applyDryRun, applyNoBackup = "", false, false
	dumpCompact = false
	restoreCompression = ""
	color.NoColor = true

	var out, errOut bytes.Buffer
	stdout, stderr, stdin = &out, &errOut, strings.NewReader(input)
	t.Cleanup(func() {
		stdout, stderr, stdin = os.Stdout, os.Stderr, os.Stdin
	})

	if !containsFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}

func loadNames(t *testing.T, path string) []string {
	t.Helper()

	doc, _, err := litematic.Load(path)
	require.NoError(t, err)
	names, err := litematic.ListBlockNames(doc)
	require.NoError(t, err)

	return names
}
