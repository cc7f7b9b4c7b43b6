package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ameng/pinglish/internal/cli"
)

func newSegmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "segment WORD",
		Short: "Print every pinyin segmentation of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunSegment(cmd.OutOrStdout(), args[0])
		},
	}
}

func newLookupCommand() *cobra.Command {
	compression := CompressionAuto

	cmd := &cobra.Command{
		Use:   "lookup SYLLABLE...",
		Short: "Look up dictionary entries by toneless pinyin syllables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cli.RunLookup(cmd.OutOrStdout(), cfg.Dictionary.Path, compression.gzipped(cfg.Dictionary.Path), args)
		},
	}
	cmd.Flags().Var(&compression, "compression", fmt.Sprintf("Dictionary compression. Possible values are %v", allCompressions))
	return cmd
}

func newToneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tone TOKEN...",
		Short: "Render digit-toned pinyin (e.g. ni3 hao3) with diacritics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunTone(cmd.OutOrStdout(), args)
		},
	}
}
