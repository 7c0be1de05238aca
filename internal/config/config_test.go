package config_test

import (
	"path/filepath"
	"testing"

	"github.com/BerryBytes/ccactl/internal/config"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := config.NewStore(fs, "/home/user/.ccactl")

	cfg := &config.Config{
		SSOStartURL: "https://example.awsapps.com/start",
		SSORegion:   "us-east-1",
		AccountID:   "123456789012",
		RoleName:    "CCA-CLI-Access",
	}
	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadNotConfigured(t *testing.T) {
	store := config.NewStore(afero.NewMemMapFs(), "/home/user/.ccactl")

	_, err := store.Load()
	assert.ErrorIs(t, err, config.ErrNotConfigured)
}

func TestLoadAcceptsYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/home/user/.ccactl"
	yamlConfig := "sso_start_url: https://example.awsapps.com/start\n" +
		"sso_region: eu-west-1\n" +
		"account_id: \"123456789012\"\n" +
		"role_name: CCA-CLI-Access\n"
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "config.json"), []byte(yamlConfig), 0o600))

	loaded, err := config.NewStore(fs, dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", loaded.SSORegion)
	assert.True(t, loaded.Complete())
}

func TestLoadRejectsGarbage(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/home/user/.ccactl"
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "config.json"), []byte("{not: [valid"), 0o600))

	_, err := config.NewStore(fs, dir).Load()
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		complete bool
	}{
		{"all fields", config.Config{SSOStartURL: "u", SSORegion: "r", AccountID: "a", RoleName: "n"}, true},
		{"missing role", config.Config{SSOStartURL: "u", SSORegion: "r", AccountID: "a"}, false},
		{"empty", config.Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.cfg.Complete())
		})
	}
}
