// Package importer extracts word tokens from source documents. Readers are
// looked up by file extension in a Registry.
package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// ErrEmptyDocument is returned when a document yields no words.
var ErrEmptyDocument = errors.New("document contains no words")

// Reader extracts the raw text of one document format.
type Reader interface {
	ReadText(path string) (string, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(path string) (string, error)

func (f ReaderFunc) ReadText(path string) (string, error) {
	return f(path)
}

// Registry maps lower-case extensions, including the dot, to readers.
type Registry map[string]Reader

// DefaultRegistry returns readers for every supported format.
func DefaultRegistry() Registry {
	return Registry{
		".txt":  ReaderFunc(ReadPlain),
		".md":   ReaderFunc(ReadPlain),
		".csv":  ReaderFunc(ReadCSV),
		".xlsx": ReaderFunc(ReadExcel),
		".docx": ReaderFunc(ReadDocx),
		".pdf":  ReaderFunc(ReadPDF),
		".dxf":  ReaderFunc(ReadDXF),
	}
}

// Extensions returns the registered extensions in sorted order.
func (r Registry) Extensions() []string {
	exts := make([]string, 0, len(r))
	for ext := range r {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Lookup returns the reader registered for the extension of path.
func (r Registry) Lookup(path string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, fmt.Errorf("cannot determine format of %s: no file extension", path)
	}
	reader, ok := r[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", ext, strings.Join(r.Extensions(), ", "))
	}
	return reader, nil
}

// ReadWords reads path with the matching reader and tokenizes the text.
func (r Registry) ReadWords(path string) ([]string, error) {
	reader, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}
	text, err := reader.ReadText(path)
	if err != nil {
		return nil, err
	}
	words := Tokenize(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDocument)
	}
	return words, nil
}

// Tokenize splits text on every rune that is neither a letter nor a digit.
// Apostrophes inside a word are kept ("don't").
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'’")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}
