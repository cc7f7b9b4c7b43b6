package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ameng/pinglish/internal/cedict"
	"github.com/ameng/pinglish/internal/pinyin"
)

// RunSegment prints every segmentation of one word, in segmenter order.
func RunSegment(out io.Writer, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("empty word")
	}

	segmenter := pinyin.NewSegmenter(pinyin.NewTable())
	segmentations := segmenter.Segment(word)
	if len(segmentations) == 0 {
		fmt.Fprintf(out, "%s: no segmentation\n", word)
		return nil
	}
	for _, syllables := range segmentations {
		fmt.Fprintf(out, "%s [%s]\n", word, strings.Join(syllables, " "))
	}
	return nil
}

// RunLookup joins toneless syllables into a canonical key and prints
// the dictionary entries under it.
func RunLookup(out io.Writer, dictionaryPath string, gzipped bool, syllables []string) error {
	index, err := cedict.Load(dictionaryPath, gzipped)
	if err != nil {
		return fmt.Errorf("cedict.Load > %w", err)
	}

	key := strings.ToLower(strings.Join(syllables, " "))
	entries := index.Lookup(key)
	if len(entries) == 0 {
		fmt.Fprintf(out, "%s: no entries\n", key)
		return nil
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s [%s] %s\n", entry.Chinese, entry.TonedPinyin, entry.Definition)
	}
	return nil
}

var tonedTokenRE = regexp.MustCompile(`^([a-zü]+)([1-5])$`)

// RunTone renders digit-toned pinyin tokens (e.g. "ni3 hao3") to their
// diacritic form.
func RunTone(out io.Writer, tokens []string) error {
	rendered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.ReplaceAll(strings.ToLower(token), "u:", "ü")
		m := tonedTokenRE.FindStringSubmatch(token)
		if m == nil {
			return fmt.Errorf("token %q is not of the form syllable+tone, e.g. hao3", token)
		}
		tone := int(m[2][0] - '0')
		syllable, err := pinyin.Render(m[1], tone)
		if err != nil {
			return fmt.Errorf("pinyin.Render > %w", err)
		}
		rendered = append(rendered, syllable)
	}
	fmt.Fprintln(out, strings.Join(rendered, " "))
	return nil
}
