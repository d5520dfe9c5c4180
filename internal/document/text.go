package document

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe = regexp.MustCompile(`\s+`)
	blankRunsRe  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw extracted text while preserving line structure.
// Line endings become LF, runs of whitespace inside a line collapse to one
// space, and runs of blank lines collapse to a single blank line. The result
// is trimmed; a document of pure whitespace cleans to "".
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line independently
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 3. Rejoin and collapse excessive blank lines
	result := strings.Join(cleanedLines, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine collapses interior whitespace to single spaces. Leading
// indentation is dropped; resume layouts use columns and tabs that carry no
// meaning once the text is linearized.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return innerSpaceRe.ReplaceAllString(trimmed, " ")
}

// Lines splits cleaned text into its non-blank lines, preserving order.
// Input is expected to already be CleanText output.
func Lines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
