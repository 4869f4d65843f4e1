package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/pathutil"
)

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "tally-config")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	os.Setenv(pathutil.EnvName, "testing")
	xdg.Reload()

	if err := pathutil.Initialize(); err != nil {
		panic(err)
	}

	code := m.Run()

	os.RemoveAll(tmp)
	os.Exit(code)
}

func TestWithViperConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, pathutil.DataDir(), cfg.Storage.Dir)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "save.json", cfg.Storage.SaveFile)
	assert.Equal(t, "autosave.json", cfg.Storage.AutoSaveFile)
	assert.True(t, cfg.AutoSave.Enabled)
	assert.Equal(t, 60, cfg.AutoSave.Interval)
	assert.True(t, cfg.Settings.Restore)
	assert.False(t, cfg.Settings.Notify)
	assert.Empty(t, cfg.Settings.TaskCmd)
	assert.True(t, cfg.Display.DarkTheme)

	// the written file is read back unchanged on the next run
	again, err := New(WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestWithViperConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	content := `storage:
  dir: ` + dir + `
  backend: bolt
  save_file: mine.json
autosave:
  enabled: true
  interval: 5
settings:
  notify: true
  task_cmd: echo "done"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Equal(t, "mine.json", cfg.Storage.SaveFile)
	assert.Equal(t, "autosave.json", cfg.Storage.AutoSaveFile)
	assert.Equal(t, 5, cfg.AutoSaveEvery())
	assert.True(t, cfg.Settings.Notify)
	assert.Equal(t, `echo "done"`, cfg.Settings.TaskCmd)
	assert.Equal(t, filepath.Join(dir, pathutil.DBFileName()), cfg.DBFilePath())
}

func TestWithViperConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))

	_, err := New(WithViperConfig(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, errConfigOption)
	assert.ErrorIs(t, err, errReadConfig)
}

func TestWithPromptConfigSkippedWhenTesting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := &Config{}
	require.NoError(t, WithPromptConfig(path)(cfg))
	assert.Nil(t, cfg.prompt)
	assert.NoFileExists(t, path)
}

func TestPromptAnswersAreWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	answers := func(c *Config) error {
		c.prompt = &PromptOptions{
			AutoSave: true,
			Interval: 300,
			Backend:  BackendBolt,
		}

		return nil
	}

	cfg, err := New(answers, WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.AutoSave.Interval)
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)

	// later runs read the answers from the file
	again, err := New(WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, 300, again.AutoSave.Interval)
	assert.Equal(t, BackendBolt, again.Storage.Backend)
}

func TestApplyCLIOptions(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{
			Dir:     "/data",
			Backend: BackendJSON,
		},
		AutoSave: AutoSaveConfig{Enabled: true, Interval: 60},
		Settings: SettingsConfig{Restore: true},
	}

	applyCLIOptions(cfg, CLIOptions{
		Backend:          " BOLT ",
		AutoSaveInterval: 10,
		DisableRestore:   true,
		Debug:            true,
	})

	assert.Equal(t, "/data", cfg.Storage.Dir)
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Equal(t, 10, cfg.AutoSave.Interval)
	assert.True(t, cfg.AutoSave.Enabled)
	assert.False(t, cfg.Settings.Restore)
	assert.True(t, cfg.CLI.Debug)
	assert.False(t, cfg.CLI.NoColor)

	applyCLIOptions(cfg, CLIOptions{DisableAutoSave: true})
	assert.Equal(t, 0, cfg.AutoSaveEvery())
}

func validConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:          "/data",
			Backend:      BackendJSON,
			SaveFile:     "save.json",
			AutoSaveFile: "autosave.json",
		},
		AutoSave: AutoSaveConfig{Enabled: true, Interval: 60},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid",
			modify: func(_ *Config) {},
		},
		{
			name:    "unknown backend",
			modify:  func(c *Config) { c.Storage.Backend = "sqlite" },
			wantErr: errUnknownBackend,
		},
		{
			name:    "empty directory",
			modify:  func(c *Config) { c.Storage.Dir = "" },
			wantErr: errEmptyDir,
		},
		{
			name:    "save file with separator",
			modify:  func(c *Config) { c.Storage.SaveFile = "dir/save.json" },
			wantErr: errInvalidFileName,
		},
		{
			name:    "empty auto-save file",
			modify:  func(c *Config) { c.Storage.AutoSaveFile = "" },
			wantErr: errInvalidFileName,
		},
		{
			name:    "same file twice",
			modify:  func(c *Config) { c.Storage.AutoSaveFile = "save.json" },
			wantErr: errSameFile,
		},
		{
			name:    "zero interval",
			modify:  func(c *Config) { c.AutoSave.Interval = 0 },
			wantErr: errInvalidInterval,
		},
		{
			name:    "negative interval",
			modify:  func(c *Config) { c.AutoSave.Interval = -5 },
			wantErr: errInvalidInterval,
		},
		{
			name: "interval ignored when disabled",
			modify: func(c *Config) {
				c.AutoSave.Enabled = false
				c.AutoSave.Interval = 0
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(
				t,
				errors.Is(err, tc.wantErr),
				"got %v, want %v",
				err,
				tc.wantErr,
			)
		})
	}
}
