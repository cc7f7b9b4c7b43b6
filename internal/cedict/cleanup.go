package cedict

import (
	"regexp"
	"strings"
)

// Definition cleanup is an ordered pipeline of rewrites over the inner
// slash-delimited sense list. Later steps assume earlier ones already
// ran; keep the order.

var (
	asideParenRE     = regexp.MustCompile(`\([^)]*(?:pr\.|pronunciation|variant|radical)[^)]*\)`)
	parenRE          = regexp.MustCompile(`\([^)]*\)`)
	altFormRE        = regexp.MustCompile(`\|\p{Han}+`)
	inlineBracketRE  = regexp.MustCompile(`(\p{Han})\[[^\]]*\]`)
	crossRefPrefixes = []string{
		"CL:",
		"see ",
		"see also ",
		"same as ",
		"variant of ",
		"old variant of ",
	}
)

// CleanDefinition applies the rewrite pipeline to the sense list of one
// entry (the text between the outer slashes) and returns the surviving
// senses rejoined with slashes. An empty result means the entry carried
// no independently useful sense.
func CleanDefinition(def string) string {
	def = dropCrossReferenceSenses(def)
	def = stripAnnotatedParentheticals(def)
	def = stripParenthesizedClauses(def)
	def = stripAlternateForms(def)
	def = stripInlineBracketAnnotations(def)
	return dropEmptySenses(def)
}

// dropCrossReferenceSenses removes classifier cross-references and
// "see"/"same as" style asides, which point at other entries rather
// than defining this one.
func dropCrossReferenceSenses(def string) string {
	var kept []string
	for _, sense := range strings.Split(def, "/") {
		if isCrossReference(sense) {
			continue
		}
		kept = append(kept, sense)
	}
	return strings.Join(kept, "/")
}

func isCrossReference(sense string) bool {
	for _, prefix := range crossRefPrefixes {
		if strings.HasPrefix(sense, prefix) {
			return true
		}
	}
	return false
}

// stripAnnotatedParentheticals removes parentheticals carrying
// pronunciation, variant or radical-number asides.
func stripAnnotatedParentheticals(def string) string {
	return asideParenRE.ReplaceAllString(def, "")
}

// stripParenthesizedClauses removes any remaining fully parenthesized
// clause.
func stripParenthesizedClauses(def string) string {
	return parenRE.ReplaceAllString(def, "")
}

// stripAlternateForms removes trailing |<Han text> alternate-form
// suffixes.
func stripAlternateForms(def string) string {
	return altFormRE.ReplaceAllString(def, "")
}

// stripInlineBracketAnnotations removes a bracketed alternate
// pronunciation following a single Han character, keeping the
// character.
func stripInlineBracketAnnotations(def string) string {
	return inlineBracketRE.ReplaceAllString(def, "$1")
}

// dropEmptySenses trims each sense and drops the ones the earlier
// rewrites emptied out.
func dropEmptySenses(def string) string {
	var kept []string
	for _, sense := range strings.Split(def, "/") {
		sense = strings.TrimSpace(sense)
		if sense == "" {
			continue
		}
		kept = append(kept, sense)
	}
	return strings.Join(kept, "/")
}
