package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/litematic"
)

func TestBlocksCommand(t *testing.T) {
	path := writeSchematic(t)

	out, _, err := runCLI(t, "", "blocks", path)
	require.NoError(t, err)
	require.Contains(t, out, "Blocks (3):")
	require.Contains(t, out, "   1. minecraft:air")
	require.Contains(t, out, "   2. minecraft:dirt")
	require.Contains(t, out, "   3. minecraft:stone")
}

func TestBlocksCommand_JSON(t *testing.T) {
	path := writeSchematic(t)

	out, _, err := runCLI(t, "", "blocks", path, "--json")
	require.NoError(t, err)

	var got struct {
		Mode   string   `json:"mode"`
		Blocks []string `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "gzip", got.Mode)
	require.Equal(t, []string{"minecraft:air", "minecraft:dirt", "minecraft:stone"}, got.Blocks)
}

func TestBlocksCommand_MissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", "blocks", filepath.Join(t.TempDir(), "absent.litematic"))
	require.Error(t, err)
}

func TestReplaceCommand(t *testing.T) {
	path := writeSchematic(t)

	out, _, err := runCLI(t, "", "replace", path, "dirt", "granite", "--yes")
	require.NoError(t, err)
	require.Contains(t, out, "minecraft:dirt -> minecraft:granite: 2 palette entries")
	require.Contains(t, out, "Backup created: "+litematic.BackupPath(path, format.CompressionZstd))
	require.Contains(t, out, "✓ Replaced 2 entries")

	require.Equal(t, []string{"minecraft:air", "minecraft:granite", "minecraft:stone"}, loadNames(t, path))
	require.FileExists(t, litematic.BackupPath(path, format.CompressionZstd))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x1f, 0x8b}, data[:2], "gzip framing is kept")
}

func TestReplaceCommand_ByNumberNoBackup(t *testing.T) {
	path := writeSchematic(t)

	_, _, err := runCLI(t, "", "replace", path, "3", "minecraft:andesite", "--yes", "--no-backup")
	require.NoError(t, err)
	require.Equal(t, []string{"minecraft:air", "minecraft:andesite", "minecraft:dirt"}, loadNames(t, path))
	require.NoFileExists(t, litematic.BackupPath(path, format.CompressionZstd))
}

func TestReplaceCommand_DryRun(t *testing.T) {
	path := writeSchematic(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, _, err := runCLI(t, "", "replace", path, "dirt", "granite", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "(dry run)")
	require.Contains(t, out, `- main[1] {Name:"minecraft:dirt",Properties:{snowy:"false"}}`)
	require.Contains(t, out, `+ main[1] {Name:"minecraft:granite",Properties:{snowy:"false"}}`)
	require.Contains(t, out, `- roof[1] {Name:"minecraft:dirt"}`)
	require.Contains(t, out, `+ roof[1] {Name:"minecraft:granite"}`)
	require.NotContains(t, out, "minecraft:stone")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestReplaceCommand_Interactive(t *testing.T) {
	path := writeSchematic(t)

	out, _, err := runCLI(t, "2\ngranite\ny\n", "replace", path)
	require.NoError(t, err)
	require.Contains(t, out, "   2. minecraft:dirt")
	require.Equal(t, []string{"minecraft:air", "minecraft:granite", "minecraft:stone"}, loadNames(t, path))
}

func TestReplaceCommand_Declined(t *testing.T) {
	path := writeSchematic(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, _, err := runCLI(t, "n\n", "replace", path, "dirt", "granite")
	require.NoError(t, err)
	require.Contains(t, out, "Aborted")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestReplaceCommand_UnknownBlock(t *testing.T) {
	path := writeSchematic(t)

	_, _, err := runCLI(t, "", "replace", path, "diamond_block", "granite", "--yes")
	require.Error(t, err)

	_, _, err = runCLI(t, "", "replace", path, "9", "granite", "--yes")
	require.Error(t, err)
}

func TestApplyAndRestore(t *testing.T) {
	path := writeSchematic(t)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	rules := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte(`
rules:
  - from: dirt
    to: granite
  - from: granite
    to: polished_granite
  - from: air
    to: cave_air
`), 0o644))
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backup:\n  compression: lz4\n"), 0o644))

	out, _, err := runCLI(t, "", "apply", path, "--rules", rules, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "minecraft:dirt -> minecraft:granite: 2")
	require.Contains(t, out, "minecraft:granite -> minecraft:polished_granite: 2")
	require.Contains(t, out, "✓ Replaced 6 entries")
	require.Equal(t, []string{"minecraft:cave_air", "minecraft:polished_granite", "minecraft:stone"}, loadNames(t, path))

	_, _, err = runCLI(t, "", "restore", path, "--config", cfgPath)
	require.NoError(t, err)
	restored, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, restored)
}

func TestApplyCommand_DryRun(t *testing.T) {
	path := writeSchematic(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rules:\n  - from: stone\n    to: cobblestone\n"), 0o644))

	out, _, err := runCLI(t, "", "apply", path, "--config", cfgPath, "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "minecraft:stone -> minecraft:cobblestone: 1")
	require.Contains(t, out, "File not modified")
	require.Contains(t, loadNames(t, path), "minecraft:stone")
}

func TestApplyCommand_NoRules(t *testing.T) {
	path := writeSchematic(t)

	_, _, err := runCLI(t, "", "apply", path)
	require.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	path := writeSchematic(t)

	out, _, err := runCLI(t, "", "verify", path)
	require.NoError(t, err)
	require.Contains(t, out, "Container: gzip")
	require.Contains(t, out, "✓ Structure OK")
}

func TestVerifyCommand_Incomplete(t *testing.T) {
	path := writeSchematic(t)
	doc, mode, err := litematic.Load(path)
	require.NoError(t, err)
	doc.Root.Delete(litematic.KeyMinecraftDataVersion)
	require.NoError(t, litematic.Save(doc, path, mode))

	out, errOut, err := runCLI(t, "", "verify", path)
	require.NoError(t, err)
	require.NotContains(t, out, "Structure OK")
	require.Contains(t, errOut, "missing MinecraftDataVersion")
}

func TestDumpCommand(t *testing.T) {
	path := writeSchematic(t)

	out, _, err := runCLI(t, "", "dump", path, "--compact")
	require.NoError(t, err)
	require.Contains(t, out, `{Version:6,MinecraftDataVersion:3465,Metadata:{Name:"house"},Regions:{`)

	out, _, err = runCLI(t, "", "dump", path)
	require.NoError(t, err)
	require.Contains(t, out, "  Version: 6,\n")
}

func TestConfigCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "config")
	require.NoError(t, err)
	require.Contains(t, out, "namespace: minecraft")
	require.Contains(t, out, "compression: zstd")
}
