package services

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrUnsupportedFormat is returned when the file extension maps to no extractor.
	ErrUnsupportedFormat = errors.New("unsupported file type")

	// ErrLegacyDocFormat is returned when a .doc file yields no text through the
	// DOCX fallback path.
	ErrLegacyDocFormat = errors.New("could not parse legacy .doc file, convert it to .docx or PDF")
)

type ExtractorService interface {
	ExtractText(filename string, data []byte) (string, error)
	IsSupported(filename string) bool
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText extracts plain text from the file based on its extension.
// A document that cannot be parsed yields an empty string, never an error:
// the only errors are ErrUnsupportedFormat and ErrLegacyDocFormat, both of
// which the caller surfaces as a per-file warning.
func (e *extractorService) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return e.extractPDF(data), nil
	case ".docx":
		return e.extractDocx(data), nil
	case ".doc":
		// Binary legacy .doc is not genuinely supported; some files saved with a
		// .doc extension are really DOCX archives, so try that path first.
		text := e.extractDocx(data)
		if strings.TrimSpace(text) == "" {
			return "", ErrLegacyDocFormat
		}
		return text, nil
	case ".txt":
		return strings.ToValidUTF8(string(data), ""), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (e *extractorService) IsSupported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".txt":
		return true
	}
	return false
}

func (e *extractorService) extractPDF(data []byte) (text string) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️  PDF extraction panic recovered: %v\n", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("⚠️  Failed to read PDF: %v\n", err)
		return ""
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		// A page with no extractable text contributes nothing but keeps
		// the page order of the rest intact.
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String()
}

func (e *extractorService) extractDocx(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("⚠️  Failed to parse DOCX: %v\n", err)
		return ""
	}
	defer doc.Close()

	return docxContentToText(doc.Editable().GetContent())
}

var xmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// docxContentToText flattens the raw word/document.xml payload into plain
// text with one line per paragraph.
func docxContentToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return strings.TrimRight(html.UnescapeString(content), "\n")
}
