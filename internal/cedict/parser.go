// Package cedict builds a lookup index over a CEDICT-style dictionary
// file, keyed by canonical toneless pinyin.
package cedict

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/ameng/pinglish/internal/pinyin"
)

// Entry is one dictionary record under a toneless-pinyin key.
type Entry struct {
	TonedPinyin string // diacritic form, syllables joined by spaces
	Chinese     string // head characters
	Definition  string // cleaned, slash-delimited senses incl. outer slashes
}

// Index maps canonical keys (space-joined lowercase toneless syllables)
// to their entries in source-file order. It is built once by Parse and
// read-only afterwards.
type Index struct {
	entries map[string][]Entry
	count   int
}

var (
	// HEAD VARIANT [PRONUNCIATION] /definition/.../
	lineRE = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]*)\]\s+/(.*)/$`)
	// one or more letters/colons followed by exactly one tone digit
	tokenRE = regexp.MustCompile(`^[a-zA-Z:]+[0-9]$`)
	// interjection/particle pronunciation such as m2, not orthodox pinyin
	interjectionRE = regexp.MustCompile(`^m[0-9]`)
)

// Load reads a CEDICT-style file, transparently decompressing when
// gzipped is set.
func Load(path string, gzipped bool) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip.NewReader > %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		r = gz
	}

	return Parse(r)
}

// Parse builds an Index from CEDICT-formatted text. Lines starting with
// # are comments. A non-comment line that does not match the overall
// entry shape aborts the whole load; silently dropping malformed lines
// could mask systematic parsing drift. Entries with non-standard
// pronunciations, mismatched character/syllable counts or definitions
// emptied by cleanup are skipped and counted.
func Parse(r io.Reader) (*Index, error) {
	index := &Index{entries: make(map[string][]Entry)}
	skipped := map[string]int{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		reason, err := index.addLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if reason != "" {
			skipped[reason]++
			slog.Debug("skipped dictionary entry", "line", lineNo, "reason", reason)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err > %w", err)
	}

	attrs := []any{"entries", index.count, "keys", len(index.entries)}
	for reason, n := range skipped {
		attrs = append(attrs, "skipped_"+strings.ReplaceAll(reason, " ", "_"), n)
	}
	slog.Info("loaded dictionary", attrs...)
	return index, nil
}

// addLine parses one entry line. It returns a non-empty skip reason for
// recoverable per-entry rejections and an error only for a corrupt line
// shape, which is fatal for the load.
func (index *Index) addLine(line string) (string, error) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return "", fmt.Errorf("malformed entry: %q", line)
	}
	chinese, pronunciation, definition := m[1], m[3], m[4]

	tokens := strings.Fields(pronunciation)
	if len(tokens) == 0 {
		return "", fmt.Errorf("empty pronunciation: %q", line)
	}
	for _, token := range tokens {
		if !tokenRE.MatchString(token) {
			return "non-standard pronunciation", nil
		}
		if interjectionRE.MatchString(token) {
			return "interjection", nil
		}
	}

	pronunciation = strings.ToLower(pronunciation)
	pronunciation = strings.ReplaceAll(pronunciation, "u:", "ü")

	if len([]rune(chinese)) != len(tokens) {
		return "character count mismatch", nil
	}

	toneless := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, pronunciation)

	toned, err := renderPronunciation(pronunciation)
	if err != nil {
		slog.Warn("cannot render pronunciation", "pronunciation", pronunciation, "error", err)
		return "unrenderable pronunciation", nil
	}

	cleaned := CleanDefinition(definition)
	if cleaned == "" {
		return "empty definition", nil
	}

	index.entries[toneless] = append(index.entries[toneless], Entry{
		TonedPinyin: toned,
		Chinese:     chinese,
		Definition:  "/" + cleaned + "/",
	})
	index.count++
	return "", nil
}

// renderPronunciation converts a lowercased digit-toned pronunciation
// field to its diacritic display form.
func renderPronunciation(pronunciation string) (string, error) {
	tokens := strings.Fields(pronunciation)
	rendered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		tone := int(token[len(token)-1] - '0')
		syllable := token[:len(token)-1]
		out, err := pinyin.Render(syllable, tone)
		if err != nil {
			return "", fmt.Errorf("pinyin.Render > %w", err)
		}
		rendered = append(rendered, out)
	}
	return strings.Join(rendered, " "), nil
}

// Lookup returns the entries under a canonical toneless key, in source
// order, or nil when the key is absent.
func (index *Index) Lookup(key string) []Entry {
	return index.entries[key]
}

// Contains reports whether any entry exists under the key.
func (index *Index) Contains(key string) bool {
	_, ok := index.entries[key]
	return ok
}

// Len returns the number of distinct toneless keys.
func (index *Index) Len() int {
	return len(index.entries)
}

// EntryCount returns the number of entries accepted into the index.
func (index *Index) EntryCount() int {
	return index.count
}
