package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableContains(t *testing.T) {
	table := NewTable()

	for _, s := range []string{"a", "ni", "hao", "bing", "zhuang", "lü", "er"} {
		assert.True(t, table.Contains(s), "expected %q in table", s)
	}
	for _, s := range []string{"", "ngo", "v", "xyz", "NI", "hao3", "blarg"} {
		assert.False(t, table.Contains(s), "did not expect %q in table", s)
	}
}

func TestTableMaxLen(t *testing.T) {
	table := NewTable()
	assert.Equal(t, 6, table.MaxLen())
}

func TestTableHasNoDuplicates(t *testing.T) {
	table := NewTable()
	assert.Equal(t, len(syllables), table.Len())
}
