// Package cli implements the command bodies behind the pinglish CLI.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/ameng/pinglish/internal/cedict"
	"github.com/ameng/pinglish/internal/pinyin"
)

var headerColor = color.New(color.FgCyan, color.Bold)

// MatchOptions configures one matcher run.
type MatchOptions struct {
	DictionaryPath string
	WordlistPath   string
	Gzipped        bool
	// Nonsense reports pronounceable words with no dictionary entry
	// instead of dictionary matches. The two modes are mutually
	// exclusive per run.
	Nonsense bool
	Out      io.Writer
}

// RunMatch builds the dictionary index, then streams the wordlist
// through the segmenter, reporting each word once per matching (or, in
// nonsense mode, non-matching) segmentation.
func RunMatch(opts MatchOptions) error {
	index, err := cedict.Load(opts.DictionaryPath, opts.Gzipped)
	if err != nil {
		return fmt.Errorf("cedict.Load > %w", err)
	}

	f, err := os.Open(opts.WordlistPath)
	if err != nil {
		return fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	segmenter := pinyin.NewSegmenter(pinyin.NewTable())
	words, matched := 0, 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words++
		if matchWord(opts.Out, index, segmenter, word, opts.Nonsense) {
			matched++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err > %w", err)
	}

	slog.Debug("matcher finished", "words", words, "reported", matched)
	return nil
}

// matchWord reports whether anything was printed for the word.
func matchWord(out io.Writer, index *cedict.Index, segmenter *pinyin.Segmenter, word string, nonsense bool) bool {
	printed := false
	for _, syllables := range segmenter.Segment(word) {
		key := strings.Join(syllables, " ")
		if nonsense {
			if !index.Contains(key) {
				printHeader(out, word, syllables)
				printed = true
			}
			continue
		}
		entries := index.Lookup(key)
		if len(entries) == 0 {
			continue
		}
		printHeader(out, word, syllables)
		for _, entry := range entries {
			fmt.Fprintf(out, "  %s [%s] %s\n", entry.Chinese, entry.TonedPinyin, entry.Definition)
		}
		printed = true
	}
	return printed
}

func printHeader(out io.Writer, word string, syllables []string) {
	fmt.Fprintf(out, "%s [%s]\n", headerColor.Sprint(word), strings.Join(syllables, " "))
}
