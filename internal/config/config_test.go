package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{".insv", ".insp", ".lrv"}, cfg.Extensions)
	assert.Equal(t, []string{"fileinfo_list.list"}, cfg.Filenames)
	assert.Equal(t, []string{"VID", "LRV", "IMG"}, cfg.DatePrefixes)
	assert.Equal(t, "insta360", cfg.Subfolder)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camorg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extensions: [\".mp4\"]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".mp4"}, cfg.Extensions)
	assert.Equal(t, Default().Filenames, cfg.Filenames)
	assert.Equal(t, Default().DatePrefixes, cfg.DatePrefixes)
	assert.Equal(t, "insta360", cfg.Subfolder)
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camorg.yaml")
	data := `extensions: [".360", ".mp4"]
filenames: ["index.dat"]
date_prefixes: ["CLIP"]
subfolder: "gopro"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".360", ".mp4"}, cfg.Extensions)
	assert.Equal(t, []string{"index.dat"}, cfg.Filenames)
	assert.Equal(t, []string{"CLIP"}, cfg.DatePrefixes)
	assert.Equal(t, "gopro", cfg.Subfolder)

	rules := cfg.Ruleset()
	assert.True(t, rules.IsManaged("clip.360"))
	assert.False(t, rules.IsManaged("video.insv"))
	assert.Equal(t, "gopro", rules.Subfolder())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camorg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extensions: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPath_FromEnv(t *testing.T) {
	t.Setenv("CAMORG_CONFIG", "/etc/camorg.yaml")
	assert.Equal(t, "/etc/camorg.yaml", Path())

	t.Setenv("CAMORG_CONFIG", "")
	assert.Equal(t, "", Path())
}

func TestRuleset_DefaultClassification(t *testing.T) {
	rules := Default().Ruleset()

	assert.True(t, rules.IsManaged("VID_20241011_185020_00_003.insv"))
	assert.True(t, rules.IsManaged("fileinfo_list.list"))
	assert.False(t, rules.IsManaged("video.mp4"))
}
