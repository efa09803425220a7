package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ldmodel/config"
)

func validConfig() *config.Config {
	return &config.Config{
		DefaultSources: config.DefaultSources{
			Listed:   "https://ex.com/profile/card",
			Unlisted: "https://ex.com/settings/prefs",
		},
		SourceIndex: map[string]bool{
			"https://ex.com/other-private": false,
			"https://ex.com/public-extra":  true,
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	missingListed := validConfig()
	missingListed.DefaultSources.Listed = ""
	assert.Error(t, missingListed.Validate())

	missingUnlisted := validConfig()
	missingUnlisted.DefaultSources.Unlisted = ""
	assert.Error(t, missingUnlisted.Validate())

	same := validConfig()
	same.DefaultSources.Unlisted = same.DefaultSources.Listed
	assert.Error(t, same.Validate())

	emptyIRI := validConfig()
	emptyIRI.SourceIndex[""] = true
	assert.Error(t, emptyIRI.Validate())
}

func TestMerge(t *testing.T) {
	base := config.DefaultConfig()
	base.DefaultSources.Listed = "https://base.example/public"
	base.SourceIndex["https://base.example/keep"] = true

	base.Merge(validConfig())

	assert.Equal(t, "https://ex.com/profile/card", base.DefaultSources.Listed)
	assert.Equal(t, "https://ex.com/settings/prefs", base.DefaultSources.Unlisted)
	assert.True(t, base.SourceIndex["https://base.example/keep"])
	assert.False(t, base.SourceIndex["https://ex.com/other-private"])
}

func TestToSourceConfigIndexesDefaults(t *testing.T) {
	cfg := validConfig().ToSourceConfig()

	assert.Equal(t, "https://ex.com/profile/card", cfg.DefaultListed)
	assert.Equal(t, "https://ex.com/settings/prefs", cfg.DefaultUnlisted)
	assert.True(t, cfg.Classify("https://ex.com/profile/card"),
		"the default listed graph classifies as listed even when the file omits it")
	assert.False(t, cfg.Classify("https://ex.com/settings/prefs"))
	assert.True(t, cfg.Classify("https://ex.com/public-extra"))
	assert.False(t, cfg.Classify("https://ex.com/never-heard-of-it"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	content := `default_sources:
  listed: https://ex.com/profile/card
  unlisted: https://ex.com/settings/prefs
source_index:
  https://ex.com/other-private: false
  https://ex.com/public-extra: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://ex.com/profile/card", cfg.DefaultSources.Listed)
	assert.True(t, cfg.SourceIndex["https://ex.com/public-extra"])
	assert.False(t, cfg.SourceIndex["https://ex.com/other-private"])
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sources.yaml")
	original := validConfig()
	require.NoError(t, original.SaveToFile(path))

	reloaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.DefaultSources, reloaded.DefaultSources)
	assert.Equal(t, original.SourceIndex, reloaded.SourceIndex)
}
