package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestExtract_PlainText(t *testing.T) {
	e := NewExtractor()
	if got := e.Extract([]byte("hello world"), "notes.txt"); got != "hello world" {
		t.Errorf("plain text changed: %q", got)
	}
	if got := e.Extract([]byte("# Title\nbody"), "readme.md"); got != "# Title\nbody" {
		t.Errorf("markdown treated as binary: %q", got)
	}
}

func TestExtract_UnknownExtensionIsPlain(t *testing.T) {
	e := NewExtractor()
	if got := e.Extract([]byte("data"), "weird.xyz"); got != "data" {
		t.Errorf("unknown extension should decode as text, got %q", got)
	}
}

func TestExtract_InvalidUTF8Replaced(t *testing.T) {
	e := NewExtractor()
	got := e.Extract([]byte{'o', 'k', 0xff, 0xfe}, "raw.txt")
	if !strings.HasPrefix(got, "ok") {
		t.Errorf("valid prefix lost: %q", got)
	}
	if !strings.Contains(got, "�") {
		t.Errorf("invalid bytes should become replacement characters: %q", got)
	}
}

func TestExtract_CorruptBinaryYieldsEmpty(t *testing.T) {
	e := NewExtractor()
	garbage := []byte("definitely not a real file")
	for _, name := range []string{"f.pdf", "f.docx", "f.xlsx"} {
		if got := e.Extract(garbage, name); got != "" {
			t.Errorf("corrupt %s should yield empty text, got %q", name, got)
		}
	}
}

func TestExtract_DOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	docXML := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p w:rsidR="001"><w:r><w:t>Quarterly report</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">for review</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	if _, err := w.Write([]byte(docXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor()
	got := e.Extract(buf.Bytes(), "report.docx")
	if got != "Quarterly report for review" {
		t.Errorf("Extract() = %q, want %q", got, "Quarterly report for review")
	}
}

func TestExtract_DOCXWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("unrelated.xml")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Write([]byte("<x/>"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor()
	if got := e.Extract(buf.Bytes(), "f.docx"); got != "" {
		t.Errorf("docx without document.xml should yield empty, got %q", got)
	}
}
