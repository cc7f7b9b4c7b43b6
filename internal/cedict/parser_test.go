package cedict

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	source := strings.Join([]string{
		"# CC-CEDICT",
		"#! version=1",
		"你好 你好 [ni3 hao3] /hello/hi/",
		"您好 您好 [nin2 hao3] /hello (polite)/",
	}, "\n")

	index, err := Parse(strings.NewReader(source))
	require.NoError(t, err)

	assert.Equal(t, 2, index.Len())
	assert.Equal(t, 2, index.EntryCount())
	require.True(t, index.Contains("ni hao"))

	entries := index.Lookup("ni hao")
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		TonedPinyin: "nǐ hǎo",
		Chinese:     "你好",
		Definition:  "/hello/hi/",
	}, entries[0])

	entries = index.Lookup("nin hao")
	require.Len(t, entries, 1)
	assert.Equal(t, "nín hǎo", entries[0].TonedPinyin)
	assert.Equal(t, "/hello/", entries[0].Definition)
}

func TestParseKeepsInsertionOrder(t *testing.T) {
	source := strings.Join([]string{
		"媽 妈 [ma1] /mother/",
		"馬 马 [ma3] /horse/",
		"罵 骂 [ma4] /to scold/",
	}, "\n")

	index, err := Parse(strings.NewReader(source))
	require.NoError(t, err)

	entries := index.Lookup("ma")
	require.Len(t, entries, 3)
	assert.Equal(t, "媽", entries[0].Chinese)
	assert.Equal(t, "馬", entries[1].Chinese)
	assert.Equal(t, "罵", entries[2].Chinese)
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{
			name: "non-standard pronunciation notation",
			line: "嗯 嗯 [xx] /interjection/",
		},
		{
			name: "m interjection token",
			line: "呣 呣 [m2] /interjection expressing a question/",
		},
		{
			name: "character syllable count mismatch",
			line: "兒 儿 [er2 r5] /son/",
		},
		{
			name: "definition empty after cleanup",
			line: "閑 闲 [xian2] /see 閒|闲[xian2]/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := Parse(strings.NewReader(tt.line))
			require.NoError(t, err, "rejections must not abort the load")
			assert.Equal(t, 0, index.EntryCount())
		})
	}
}

func TestParseMalformedLineIsFatal(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "missing pronunciation", line: "你好 你好 /hello/"},
		{name: "missing definition", line: "你好 你好 [ni3 hao3]"},
		{name: "free text", line: "not a dictionary line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.line))
			assert.Error(t, err)
		})
	}
}

func TestParseUmlautRewrite(t *testing.T) {
	index, err := Parse(strings.NewReader("女 女 [nu:3] /woman/"))
	require.NoError(t, err)

	require.True(t, index.Contains("nü"))
	entries := index.Lookup("nü")
	require.Len(t, entries, 1)
	assert.Equal(t, "nǚ", entries[0].TonedPinyin)
}

func TestParseNeutralTone(t *testing.T) {
	index, err := Parse(strings.NewReader("媽媽 妈妈 [ma1 ma5] /mom/"))
	require.NoError(t, err)

	require.True(t, index.Contains("ma ma"))
	assert.Equal(t, "mā ma", index.Lookup("ma ma")[0].TonedPinyin)
}

func TestLoadGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cedict.txt.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("你好 你好 [ni3 hao3] /hello/\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	index, err := Load(path, true)
	require.NoError(t, err)
	assert.True(t, index.Contains("ni hao"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.u8"), false)
	assert.Error(t, err)
}
