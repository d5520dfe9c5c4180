// Package artifacts writes and reads parsed resume records on disk.
// Output files are named after the source document: parsing resume.pdf in
// output directory out/ produces out/resume_output.json.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// OutputSuffix is appended to the source file stem to form the output name.
const OutputSuffix = "_output.json"

// OutputPath returns the output file path for a source document.
func OutputPath(outputDir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+OutputSuffix)
}

// Write serializes a record to its output path as indented JSON, creating the
// output directory if needed. Returns the path written.
func Write(outputDir, sourcePath string, record *types.ResumeRecord) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize record: %w", err)
	}

	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	path := OutputPath(outputDir, sourcePath)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write record to %s: %w", path, err)
	}
	return path, nil
}

// Read loads a record previously written by Write.
func Read(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record from %s: %w", path, err)
	}

	record := types.NewResumeRecord()
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", path, err)
	}
	return record, nil
}
