package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeDocx builds a minimal .docx archive containing the given paragraphs.
func writeDocx(t *testing.T, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.docx")

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	zw := zip.NewWriter(file)
	doc, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	_, err = doc.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`))
	require.NoError(t, err)
	for _, p := range paragraphs {
		_, err = doc.Write([]byte(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`))
		require.NoError(t, err)
	}
	_, err = doc.Write([]byte(`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		want        Format
		wantErr     bool
	}{
		{"pdf content type", "any", ContentTypePDF, FormatPDF, false},
		{"docx content type", "any", ContentTypeDocx, FormatDocx, false},
		{"text content type", "any", ContentTypeText, FormatText, false},
		{"pdf extension", "resume.PDF", "", FormatPDF, false},
		{"docx extension", "resume.docx", "", FormatDocx, false},
		{"txt extension", "resume.txt", "", FormatText, false},
		{"unknown content type", "resume.pdf", "application/zip", "", true},
		{"unknown extension", "resume.png", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path, tt.contentType)
			if tt.wantErr {
				require.Error(t, err)
				var ufe *UnsupportedFormatError
				assert.ErrorAs(t, err, &ufe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTextPlain(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "Jane A. Doe\r\nSenior   Software Engineer\n\n\n\njane@example.com\n")

	text, err := ExtractText(path, ContentTypeText)
	require.NoError(t, err)

	assert.Equal(t, "Jane A. Doe\nSenior Software Engineer\n\njane@example.com", text)
}

func TestExtractTextDocx(t *testing.T) {
	path := writeDocx(t, []string{"Jane A. Doe", "Software Engineer", "jane@example.com"})

	text, err := ExtractText(path, ContentTypeDocx)
	require.NoError(t, err)

	assert.Equal(t, "Jane A. Doe\nSoftware Engineer\njane@example.com", text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "content")

	_, err := ExtractText(path, "application/zip")

	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "application/zip", ufe.ContentType)
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.txt"), ContentTypeText)

	var efe *ExtractionFailedError
	require.ErrorAs(t, err, &efe)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "   \n\t\n  ")

	_, err := ExtractText(path, ContentTypeText)

	var nte *NoExtractableTextError
	assert.ErrorAs(t, err, &nte)
}

func TestExtractTextCorruptDocx(t *testing.T) {
	path := writeTempFile(t, "resume.docx", "not a zip archive")

	_, err := ExtractText(path, ContentTypeDocx)

	var efe *ExtractionFailedError
	assert.ErrorAs(t, err, &efe)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf normalized", "a\r\nb", "a\nb"},
		{"interior whitespace collapsed", "a \t b", "a b"},
		{"blank runs collapsed", "a\n\n\n\nb", "a\n\nb"},
		{"trimmed", "  \n a \n  ", "a"},
		{"whitespace only", " \t \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestLines(t *testing.T) {
	lines := Lines("Jane A. Doe\n\nSoftware Engineer\njane@example.com")

	assert.Equal(t, []string{"Jane A. Doe", "Software Engineer", "jane@example.com"}, lines)
}
