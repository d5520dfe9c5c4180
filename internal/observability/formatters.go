// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of the parsed record.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.CandidateName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", record.JobTitle))
	if record.ContactInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", record.ContactInfo.Location))
	}
	if record.ContactInfo.PhoneNumber != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", record.ContactInfo.PhoneNumber))
	}
	if len(record.ContactInfo.EmailAddresses) > 0 {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.ContactInfo.EmailAddresses[0]))
	}

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Skills[i]))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	if len(record.WorkExperience) > 0 {
		sb.WriteString("\nWork Experience:\n")
		count := min(len(record.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := record.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s", w.CompanyName))
			if w.JobTitle != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", w.JobTitle))
			}
			sb.WriteString("\n")
		}
		if len(record.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.WorkExperience)-maxItemsToShow))
		}
	}

	if len(record.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(record.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := record.Education[i]
			line := e.Qualification
			if e.Establishment != "" {
				line += ", " + e.Establishment
			}
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatistics outputs per-section counts and run metadata.
func (p *Printer) PrintStatistics(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	stats := types.Stats(record)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Work experience entries:    %d\n", stats.WorkExperienceCount))
	sb.WriteString(fmt.Sprintf("Education entries:          %d\n", stats.EducationCount))
	sb.WriteString(fmt.Sprintf("Skills:                     %d\n", stats.SkillsCount))
	sb.WriteString(fmt.Sprintf("Professional development:   %d\n", stats.ProfessionalDevelopmentCount))
	sb.WriteString(fmt.Sprintf("Other info:                 %d\n", stats.OtherInfoCount))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Method used:                %s\n", record.ParsingMetadata.MethodUsed))
	sb.WriteString(fmt.Sprintf("Source text length:         %d chars\n", record.ParsingMetadata.SourceTextLength))
	sb.WriteString(fmt.Sprintf("Elapsed:                    %.2fs", record.ParsingMetadata.ElapsedSeconds))

	p.printBox("EXTRACTION STATISTICS", sb.String())
}
