// Package document converts resume files (PDF, DOCX, plain text) into plain
// text for the extraction pipeline. Byte-level decoding is delegated to
// format-specific readers; page and paragraph breaks collapse to newlines.
package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Format is a supported document format.
type Format string

// Supported formats
const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatText Format = "txt"
)

// Content types accepted by DetectFormat, matching what browsers declare on upload.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

// DetectFormat resolves a declared content type (or, when empty, the file
// extension) to a supported format. Unknown types are rejected rather than
// silently yielding empty text.
func DetectFormat(path, contentType string) (Format, error) {
	switch contentType {
	case ContentTypePDF:
		return FormatPDF, nil
	case ContentTypeDocx, "application/msword":
		return FormatDocx, nil
	case ContentTypeText:
		return FormatText, nil
	case "":
		// Fall through to extension sniffing below.
	default:
		return "", &UnsupportedFormatError{ContentType: contentType}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatDocx, nil
	case ".txt", ".text":
		return FormatText, nil
	default:
		return "", &UnsupportedFormatError{ContentType: ext}
	}
}

// ExtractText reads the document at path and returns its plain text.
// Returns *UnsupportedFormatError, *ExtractionFailedError or
// *NoExtractableTextError; the returned text is otherwise non-empty
// after trimming.
func ExtractText(path, contentType string) (string, error) {
	format, err := DetectFormat(path, contentType)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDF(path)
	case FormatDocx:
		text, err = extractDocx(path)
	case FormatText:
		text, err = extractPlainText(path)
	}
	if err != nil {
		return "", &ExtractionFailedError{Path: path, Cause: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &NoExtractableTextError{Path: path}
	}
	return text, nil
}

// extractPDF extracts text page by page. A page that cannot be decoded
// contributes no text but does not abort the document.
func extractPDF(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	return text.String(), nil
}

// extractDocx reads the .docx file as a zip archive and pulls text from the
// <w:t> elements of word/document.xml, emitting one line per <w:p> paragraph.
func extractDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var text strings.Builder
	var inText bool
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				text.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				text.Write(el)
			}
		}
	}

	return text.String(), nil
}

func extractPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
