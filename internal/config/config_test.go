package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		wantErr           bool
		want              *Config
		wantErrorContains string
	}{
		{
			name: "valid config file with custom values",
			configContent: `dictionary:
  path: custom/cedict.u8
wordlist:
  path: custom/words.txt
`,
			want: &Config{
				Dictionary: DictionaryConfig{Path: "custom/cedict.u8"},
				Wordlist:   WordlistConfig{Path: "custom/words.txt"},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `dictionary:
  path: custom/cedict.u8
`,
			want: &Config{
				Dictionary: DictionaryConfig{Path: "custom/cedict.u8"},
				Wordlist:   WordlistConfig{Path: "/usr/share/dict/words"},
			},
		},
		{
			name: "unknown keys fall back to defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: &Config{
				Dictionary: DictionaryConfig{Path: filepath.Join("data", "cedict_ts.u8")},
				Wordlist:   WordlistConfig{Path: "/usr/share/dict/words"},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `dictionary:
  invalid yaml format here [[[
`,
			wantErr:           true,
			wantErrorContains: "configuration file found but could not be read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))

			got, err := Load(configPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("CEDICT_PATH", "env/cedict.u8")
	t.Setenv("WORDLIST_PATH", "env/words.txt")

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(""), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "env/cedict.u8", cfg.Dictionary.Path)
	assert.Equal(t, "env/words.txt", cfg.Wordlist.Path)
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "cedict.u8")
	wordsPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("# empty\n"), 0644))
	require.NoError(t, os.WriteFile(wordsPath, []byte("bingo\n"), 0644))

	tests := []struct {
		name              string
		config            Config
		wantErrorContains string
	}{
		{
			name: "both files readable",
			config: Config{
				Dictionary: DictionaryConfig{Path: dictPath},
				Wordlist:   WordlistConfig{Path: wordsPath},
			},
		},
		{
			name: "missing dictionary",
			config: Config{
				Dictionary: DictionaryConfig{Path: filepath.Join(dir, "missing.u8")},
				Wordlist:   WordlistConfig{Path: wordsPath},
			},
			wantErrorContains: "dictionary.path must be an existing and readable file",
		},
		{
			name: "directory is not a file",
			config: Config{
				Dictionary: DictionaryConfig{Path: dictPath},
				Wordlist:   WordlistConfig{Path: dir},
			},
			wantErrorContains: "wordlist.path must be an existing and readable file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErrorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrorContains)
		})
	}
}
