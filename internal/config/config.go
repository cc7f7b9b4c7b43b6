package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Wordlist   WordlistConfig   `mapstructure:"wordlist"`
}

type DictionaryConfig struct {
	Path string `mapstructure:"path" validate:"file"`
}

type WordlistConfig struct {
	Path string `mapstructure:"path" validate:"file"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pinglish")
	}

	v.SetDefault("dictionary.path", filepath.Join("data", "cedict_ts.u8"))
	v.SetDefault("wordlist.path", "/usr/share/dict/words")

	// Bind paths to environment variables so a run can be pointed at
	// other files without a config file
	if err := v.BindEnv("dictionary.path", "CEDICT_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind CEDICT_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("wordlist.path", "WORDLIST_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDLIST_PATH environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
