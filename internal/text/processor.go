// Package text normalizes word tokens and counts their frequencies.
package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Processor transforms a token stream. Implementations must not modify the
// input slice.
type Processor interface {
	Process(words []string) []string
}

// Chain applies processors in order.
type Chain []Processor

func (c Chain) Process(words []string) []string {
	for _, p := range c {
		words = p.Process(words)
	}
	return words
}

// Lower folds every token to lower case.
type Lower struct{}

func (Lower) Process(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

// MinLength drops tokens shorter than N runes.
type MinLength struct {
	N int
}

func (m MinLength) Process(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) >= m.N {
			out = append(out, w)
		}
	}
	return out
}

// StopWords drops tokens found in the set. Matching is case-insensitive.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a filter from a list of words.
func NewStopWords(words []string) *StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &StopWords{set: set}
}

// LoadStopWords reads one word per line from path. Blank lines and lines
// starting with '#' are ignored. An empty path yields the built-in list.
func LoadStopWords(path string) (*StopWords, error) {
	if path == "" {
		return NewStopWords(DefaultStopWords), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open stop-word list: %w", err)
	}
	defer f.Close()

	words, err := readWordList(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read stop-word list %s: %w", path, err)
	}
	return NewStopWords(words), nil
}

func readWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

// Contains reports whether w is a stop word.
func (s *StopWords) Contains(w string) bool {
	_, ok := s.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of stop words.
func (s *StopWords) Len() int {
	return len(s.set)
}

func (s *StopWords) Process(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !s.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

// DefaultStopWords is a short list of English function words.
var DefaultStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can", "could", "did", "do", "does", "doing",
	"down", "during", "each", "few", "for", "from", "further", "had", "has", "have",
	"having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
	"i", "if", "in", "into", "is", "it", "its", "itself", "just", "me",
	"more", "most", "my", "myself", "no", "nor", "not", "now", "of", "off",
	"on", "once", "only", "or", "other", "our", "ours", "ourselves", "out", "over",
	"own", "same", "she", "should", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "until", "up", "very", "was", "we", "were",
	"what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"would", "you", "your", "yours", "yourself", "yourselves",
}
