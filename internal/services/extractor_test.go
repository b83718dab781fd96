package services

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := map[string]string{
		"word/document.xml": documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

const twoParagraphDoc = `<w:document><w:body>` +
	`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Senior Go Developer</w:t></w:r></w:p>` +
	`</w:body></w:document>`

func TestExtractTextDocxParagraphs(t *testing.T) {
	data := buildDocx(t, twoParagraphDoc)

	text, err := NewExtractorService().ExtractText("resume.docx", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "Jane Doe\nSenior Go Developer" {
		t.Fatalf("unexpected docx text: %q", text)
	}
}

func TestExtractTextDocFallsBackToDocx(t *testing.T) {
	// A DOCX payload saved with a .doc extension still extracts.
	data := buildDocx(t, twoParagraphDoc)

	text, err := NewExtractorService().ExtractText("resume.doc", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text == "" {
		t.Fatalf("expected text from docx payload behind .doc extension")
	}
}

func TestExtractTextLegacyDocHint(t *testing.T) {
	_, err := NewExtractorService().ExtractText("resume.doc", []byte{0xd0, 0xcf, 0x11, 0xe0, 0x00, 0x01})
	if !errors.Is(err, ErrLegacyDocFormat) {
		t.Fatalf("expected ErrLegacyDocFormat, got %v", err)
	}
}

func TestExtractTextPlainText(t *testing.T) {
	text, err := NewExtractorService().ExtractText("resume.txt", []byte("plain resume text"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "plain resume text" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextDropsInvalidUTF8(t *testing.T) {
	data := append([]byte("valid"), 0xff, 0xfe)
	data = append(data, []byte("text")...)

	text, err := NewExtractorService().ExtractText("resume.txt", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "validtext" {
		t.Fatalf("expected invalid bytes dropped, got %q", text)
	}
}

func TestExtractTextCorruptPDFYieldsEmpty(t *testing.T) {
	text, err := NewExtractorService().ExtractText("resume.pdf", []byte("%PDF-1.7 garbage stream"))
	if err != nil {
		t.Fatalf("corrupt PDF must not error, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text for corrupt PDF, got %q", text)
	}
}

func TestExtractTextCorruptDocxYieldsEmpty(t *testing.T) {
	text, err := NewExtractorService().ExtractText("resume.docx", []byte("not a zip archive"))
	if err != nil {
		t.Fatalf("corrupt DOCX must not error, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text for corrupt DOCX, got %q", text)
	}
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	_, err := NewExtractorService().ExtractText("resume.png", []byte("binary"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestIsSupported(t *testing.T) {
	extractor := NewExtractorService()

	for _, filename := range []string{"a.pdf", "b.DOCX", "c.doc", "d.txt"} {
		if !extractor.IsSupported(filename) {
			t.Fatalf("expected %s to be supported", filename)
		}
	}
	if extractor.IsSupported("e.png") {
		t.Fatalf("expected .png to be unsupported")
	}
}

func TestDocxContentToTextUnescapesEntities(t *testing.T) {
	content := `<w:p><w:r><w:t>C&amp;C engineer</w:t></w:r></w:p>`

	if got := docxContentToText(content); got != "C&C engineer" {
		t.Fatalf("unexpected text: %q", got)
	}
}
