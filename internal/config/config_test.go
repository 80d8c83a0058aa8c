package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/litematic"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	c, err := cfg.BackupCompression()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, c)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
namespace: create
verify_after_save: false
backup:
  enabled: false
  compression: lz4
rules:
  - from: dirt
    to: minecraft:granite
  - from: minecraft:oak_planks
    to: spruce_planks
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "create", cfg.Namespace)
	require.False(t, cfg.VerifyAfterSave)
	require.False(t, cfg.Backup.Enabled)

	c, err := cfg.BackupCompression()
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, c)

	require.Equal(t, []litematic.Rule{
		{From: "create:dirt", To: "minecraft:granite"},
		{From: "minecraft:oak_planks", To: "create:spruce_planks"},
	}, cfg.NormalizedRules())
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("backup:\n  compression: s2\n"))
	require.NoError(t, err)
	require.Equal(t, litematic.DefaultNamespace, cfg.Namespace)
	require.True(t, cfg.VerifyAfterSave)
	require.Equal(t, "s2", cfg.Backup.Compression)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("backup:\n  compression: brotli\n"))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = Parse([]byte("rules:\n  - from: dirt\n"))
	require.ErrorIs(t, err, errs.ErrInvalidRule)

	_, err = Parse([]byte("namespaec: create\n"))
	require.Error(t, err)

	_, err = Parse([]byte("rules: [\n"))
	require.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Rules = []litematic.Rule{{From: "minecraft:dirt", To: "minecraft:granite"}}

	data, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
