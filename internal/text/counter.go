package text

import (
	"sort"

	"github.com/piwi3910/tagcloud/internal/model"
)

// Count tallies words and returns them by descending count, ties broken
// alphabetically, so the placement order is stable across runs.
func Count(words []string) []model.WordCount {
	counts := make(map[string]int)
	for _, w := range words {
		if w != "" {
			counts[w]++
		}
	}

	result := make([]model.WordCount, 0, len(counts))
	for w, c := range counts {
		result = append(result, model.WordCount{Word: w, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Word < result[j].Word
	})
	return result
}

// Top returns at most n entries of counts. n <= 0 returns all of them.
func Top(counts []model.WordCount, n int) []model.WordCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}

// Pipeline builds the standard processor chain from settings: lower case,
// minimum length, then stop words.
func Pipeline(settings model.Settings) (Chain, error) {
	stop, err := LoadStopWords(settings.StopWordsPath)
	if err != nil {
		return nil, err
	}
	chain := Chain{Lower{}}
	if settings.MinWordLength > 1 {
		chain = append(chain, MinLength{N: settings.MinWordLength})
	}
	return append(chain, stop), nil
}
