package importer

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ─── Tokenize Tests ────────────────────────────────────────

func TestTokenize(t *testing.T) {
	got := Tokenize("Hello, world! It's 2024 -- naïve café\n\tdone.")
	want := []string{"Hello", "world", "It's", "2024", "naïve", "café", "done"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_StripsQuotes(t *testing.T) {
	got := Tokenize("'quoted' ''")
	want := []string{"quoted"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(" \n\t ... "); len(got) != 0 {
		t.Errorf("expected no words, got %v", got)
	}
}

// ─── Registry Tests ────────────────────────────────────────

func TestLookup_CaseInsensitiveExtension(t *testing.T) {
	reg := DefaultRegistry()
	if _, err := reg.Lookup("NOTES.TXT"); err != nil {
		t.Errorf("expected .TXT to resolve, got %v", err)
	}
}

func TestLookup_Unsupported(t *testing.T) {
	_, err := DefaultRegistry().Lookup("image.png")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), ".docx") {
		t.Errorf("expected supported list in error, got %v", err)
	}
}

func TestLookup_NoExtension(t *testing.T) {
	if _, err := DefaultRegistry().Lookup("README"); err == nil {
		t.Error("expected error for missing extension")
	}
}

func TestExtensionsSorted(t *testing.T) {
	exts := DefaultRegistry().Extensions()
	want := []string{".csv", ".docx", ".dxf", ".md", ".pdf", ".txt", ".xlsx"}
	if !reflect.DeepEqual(exts, want) {
		t.Errorf("expected %v, got %v", want, exts)
	}
}

func TestReadWords_CustomReader(t *testing.T) {
	reg := Registry{".fake": ReaderFunc(func(string) (string, error) {
		return "alpha beta", nil
	})}
	words, err := reg.ReadWords("x.fake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"alpha", "beta"}) {
		t.Errorf("unexpected words %v", words)
	}
}

func TestReadWords_EmptyDocument(t *testing.T) {
	path := writeFile(t, "empty.txt", "  \n ,,, \n")
	_, err := DefaultRegistry().ReadWords(path)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestReadWords_MissingFile(t *testing.T) {
	_, err := DefaultRegistry().ReadWords(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrEmptyDocument) {
		t.Error("missing file must not be reported as empty")
	}
}

// ─── Plain Text Tests ──────────────────────────────────────

func TestReadWords_Markdown(t *testing.T) {
	path := writeFile(t, "notes.md", "# Title\n\n* Gopher likes *Go*\n")
	words, err := DefaultRegistry().ReadWords(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Title", "Gopher", "likes", "Go"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("expected %v, got %v", want, words)
	}
}

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("word,note\nshelf,oak\ndoor,pine\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("word;note\nshelf;oak\ndoor;pine\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("word\tnote\nshelf\toak\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_SingleColumnDefaultsToComma(t *testing.T) {
	data := []byte("shelf\ndoor\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma fallback, got %q", got)
	}
}

// ─── CSV Tests ─────────────────────────────────────────────

func TestReadCSV_Semicolon(t *testing.T) {
	path := writeFile(t, "words.csv", "word;note\nshelf;\"oak board\"\n")
	words, err := DefaultRegistry().ReadWords(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"word", "note", "shelf", "oak", "board"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("expected %v, got %v", want, words)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	text, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

// ─── Excel Tests ───────────────────────────────────────────

func createTestExcel(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	first := f.GetSheetName(0)
	for name, rows := range sheets {
		if name != first {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("failed to create sheet: %v", err)
			}
		}
		for i, row := range rows {
			for j, cell := range row {
				cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					t.Fatalf("failed to create cell reference: %v", err)
				}
				if err := f.SetCellValue(name, cellRef, cell); err != nil {
					t.Fatalf("failed to set cell value: %v", err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestReadExcel_AllSheets(t *testing.T) {
	path := createTestExcel(t, map[string][][]interface{}{
		"Sheet1": {{"alpha", "beta"}, {"gamma", 42}},
		"Extra":  {{"delta"}},
	})

	words, err := DefaultRegistry().ReadWords(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := strings.Join(words, " ")
	for _, w := range []string{"alpha", "beta", "gamma", "42", "delta"} {
		if !strings.Contains(got, w) {
			t.Errorf("expected %q in %v", w, words)
		}
	}
}

func TestReadExcel_InvalidFile(t *testing.T) {
	path := writeFile(t, "bad.xlsx", "not a workbook")
	if _, err := ReadExcel(path); err == nil {
		t.Error("expected error for invalid workbook")
	}
}

// ─── Word Tests ────────────────────────────────────────────

func createTestDocx(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to add document.xml: %v", err)
	}
	doc := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("failed to write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}
	return path
}

func TestReadDocx_Paragraphs(t *testing.T) {
	path := createTestDocx(t,
		`<w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:tab/><w:t>brave</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>new world</w:t></w:r></w:p>`)

	text, err := ReadDocx(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello brave\nnew world\n" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestReadDocx_IgnoresMarkupOutsideRuns(t *testing.T) {
	path := createTestDocx(t, `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Title</w:t></w:r></w:p>`)
	words, err := DefaultRegistry().ReadWords(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"Title"}) {
		t.Errorf("expected only run text, got %v", words)
	}
}

func TestReadDocx_MissingBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nobody.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	if _, err := zw.Create("word/styles.xml"); err != nil {
		t.Fatal(err)
	}
	zw.Close()
	f.Close()

	if _, err := ReadDocx(path); err == nil {
		t.Error("expected error for docx without document.xml")
	}
}

// ─── PDF and DXF Tests ─────────────────────────────────────

func TestReadPDF_InvalidFile(t *testing.T) {
	path := writeFile(t, "bad.pdf", "plain text, not a PDF")
	if _, err := ReadPDF(path); err == nil {
		t.Error("expected error for invalid PDF")
	}
}

func TestReadDXF_MissingFile(t *testing.T) {
	if _, err := ReadDXF(filepath.Join(t.TempDir(), "missing.dxf")); err == nil {
		t.Error("expected error for missing DXF file")
	}
}

func TestDXFUnescape(t *testing.T) {
	got := dxfUnescape("90%%d %%p0.5 %%c12 100%%%")
	if got != "90° ±0.5 ø12 100%" {
		t.Errorf("unexpected unescape result %q", got)
	}
}
