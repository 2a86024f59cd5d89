package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLower(t *testing.T) {
	in := []string{"Go", "GOPHER", "cloud"}
	out := Lower{}.Process(in)
	assert.Equal(t, []string{"go", "gopher", "cloud"}, out)
	assert.Equal(t, "Go", in[0], "input must not be modified")
}

func TestMinLength(t *testing.T) {
	out := MinLength{N: 3}.Process([]string{"a", "an", "ant", "éte", "über"})
	assert.Equal(t, []string{"ant", "éte", "über"}, out)
}

func TestStopWords(t *testing.T) {
	s := NewStopWords([]string{"The", " and ", ""})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("THE"))
	assert.Equal(t, []string{"cat", "dog"}, s.Process([]string{"the", "cat", "and", "dog"}))
}

func TestLoadStopWordsDefault(t *testing.T) {
	s, err := LoadStopWords("")
	require.NoError(t, err)
	assert.True(t, s.Contains("the"))
	assert.False(t, s.Contains("gopher"))
}

func TestLoadStopWordsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nfoo\n\n  bar  \n"), 0644))

	s, err := LoadStopWords(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("bar"))
	assert.False(t, s.Contains("# comment"))
}

func TestLoadStopWordsMissingFile(t *testing.T) {
	_, err := LoadStopWords(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	chain := Chain{Lower{}, NewStopWords([]string{"the"})}
	assert.Equal(t, []string{"cat"}, chain.Process([]string{"The", "Cat"}))
}

func TestCount_OrderedByCountThenWord(t *testing.T) {
	counts := Count([]string{"b", "a", "c", "b", "a", "b", "", "d"})
	assert.Equal(t, []model.WordCount{
		{Word: "b", Count: 3},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
		{Word: "d", Count: 1},
	}, counts)
}

func TestCount_Empty(t *testing.T) {
	assert.Empty(t, Count(nil))
}

func TestTop(t *testing.T) {
	counts := Count([]string{"x", "y", "y", "z", "z", "z"})
	assert.Len(t, Top(counts, 2), 2)
	assert.Equal(t, "z", Top(counts, 1)[0].Word)
	assert.Len(t, Top(counts, 0), 3)
	assert.Len(t, Top(counts, 10), 3)
}

func TestPipeline(t *testing.T) {
	s := model.DefaultSettings()
	chain, err := Pipeline(s)
	require.NoError(t, err)

	out := chain.Process([]string{"The", "Gopher", "is", "an", "Animal", "of", "GO"})
	assert.Equal(t, []string{"gopher", "animal"}, out)
}
