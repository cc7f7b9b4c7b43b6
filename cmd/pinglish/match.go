package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ameng/pinglish/internal/cli"
	"github.com/ameng/pinglish/internal/config"
)

// Compression selects how the dictionary file is decompressed.
type Compression string

func (c *Compression) Set(val string) error {
	for _, compression := range allCompressions {
		if val == string(compression) {
			*c = compression
			return nil
		}
	}
	return fmt.Errorf("invalid compression: %s", val)
}

func (c Compression) String() string {
	return string(c)
}

func (c *Compression) Type() string {
	return "Compression"
}

const (
	CompressionAuto Compression = "auto" // gzip when the path ends in .gz
	CompressionGzip Compression = "gzip"
	CompressionNone Compression = "none"
)

var (
	_               pflag.Value = (*Compression)(nil)
	allCompressions             = []Compression{CompressionAuto, CompressionGzip, CompressionNone}
)

func (c Compression) gzipped(path string) bool {
	switch c {
	case CompressionGzip:
		return true
	case CompressionNone:
		return false
	default:
		return strings.HasSuffix(path, ".gz")
	}
}

func newMatchCommand() *cobra.Command {
	var nonsense bool
	compression := CompressionAuto

	cmd := &cobra.Command{
		Use:   "match [CEDICT] [WORDLIST]",
		Short: "Report English words pronounceable as Mandarin pinyin",
		Long: `Reads a CEDICT-style dictionary and an English wordlist, and prints
every word whose spelling segments into valid toneless pinyin syllables
matching a dictionary pronunciation. With --nonsense it instead prints
the pronounceable words that match no dictionary entry.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Dictionary.Path = args[0]
			}
			if len(args) > 1 {
				cfg.Wordlist.Path = args[1]
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid input files: %w", err)
			}

			return cli.RunMatch(cli.MatchOptions{
				DictionaryPath: cfg.Dictionary.Path,
				WordlistPath:   cfg.Wordlist.Path,
				Gzipped:        compression.gzipped(cfg.Dictionary.Path),
				Nonsense:       nonsense,
				Out:            cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&nonsense, "nonsense", false, "Report pronounceable words with no dictionary entry")
	cmd.Flags().Var(&compression, "compression", fmt.Sprintf("Dictionary compression. Possible values are %v", allCompressions))

	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
