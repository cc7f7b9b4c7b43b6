package pinyin

import (
	"fmt"
	"strings"
)

// vowels is the vowel alphabet a tone mark can land on.
const vowels = "aeiouü"

// diacritics maps a plain vowel to its tone-marked forms, indexed by
// tone digit 1-4.
var diacritics = map[rune][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

// markTarget names which vowel inside a multi-vowel run receives the
// tone mark. Runs absent from this map have not been catalogued and
// rendering them is an error rather than a guess.
var markTarget = map[string]rune{
	"ai":  'a',
	"ao":  'a',
	"ei":  'e',
	"ia":  'a',
	"iao": 'a',
	"ie":  'e',
	"io":  'o', // iong
	"iu":  'u',
	"ou":  'o',
	"ua":  'a',
	"uai": 'a',
	"ue":  'e',
	"ui":  'i',
	"uo":  'o',
	"üe":  'e',
}

// Render converts a toneless syllable plus a tone digit 1-5 into its
// diacritic form. Tone 5 is the neutral tone and returns the syllable
// unchanged. Exactly one vowel of the syllable is replaced otherwise.
func Render(syllable string, tone int) (string, error) {
	if tone < 1 || tone > 5 {
		return "", fmt.Errorf("tone %d out of range for %q", tone, syllable)
	}
	if tone == 5 {
		return syllable, nil
	}

	run, start := vowelRun(syllable)
	if run == "" {
		return "", fmt.Errorf("no vowel in syllable %q", syllable)
	}

	runes := []rune(run)
	target := runes[0]
	if len(runes) > 1 {
		t, ok := markTarget[run]
		if !ok {
			return "", fmt.Errorf("vowel run %q of syllable %q is not catalogued", run, syllable)
		}
		target = t
	}

	marked := diacritics[target][tone-1]

	// Replace the first occurrence of the target vowel only; the run may
	// repeat a vowel later in theory and pattern substitution would hit
	// the wrong one.
	out := []rune(syllable)
	for i := start; i < len(out); i++ {
		if out[i] == target {
			out[i] = marked
			return string(out), nil
		}
	}
	return "", fmt.Errorf("target vowel %q not found in syllable %q", target, syllable)
}

// vowelRun extracts the maximal run of vowel characters from a syllable
// and the rune index where it starts.
func vowelRun(syllable string) (string, int) {
	runes := []rune(syllable)
	start := -1
	for i, r := range runes {
		if strings.ContainsRune(vowels, r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return string(runes[start:i]), start
		}
	}
	if start < 0 {
		return "", -1
	}
	return string(runes[start:]), start
}
