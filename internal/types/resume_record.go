// Package types defines the shared data structures passed between extraction stages.
package types

import "strings"

// ParseMethod identifies which extraction strategy produced a record.
type ParseMethod string

// Parse method constants for ParsingMetadata.MethodUsed
const (
	// MethodStructured means every field group was filled by the structured LLM call
	MethodStructured ParseMethod = "structured"
	// MethodDeterministic means the record was filled entirely by the heuristic extractor
	MethodDeterministic ParseMethod = "deterministic"
	// MethodMixed means at least one field group degraded to a fallback path
	MethodMixed ParseMethod = "mixed"
)

// DateNone is the sentinel stored in work experience dates when no date was found
const DateNone = "None"

// ContactInfo holds contact identifiers extracted from a resume.
// Email addresses and personal URLs are deduplicated, insertion-ordered lists.
type ContactInfo struct {
	Location       string   `json:"location"`
	PhoneNumber    string   `json:"phone_number"`
	EmailAddresses []string `json:"email_addresses"`
	PersonalURLs   []string `json:"personal_urls"`
}

// EducationEntry is a single education qualification.
// Qualification is the only required field; the rest are best-effort.
type EducationEntry struct {
	Qualification string `json:"qualification" validate:"required"`
	Establishment string `json:"establishment,omitempty"`
	Country       string `json:"country,omitempty"`
	Year          string `json:"year,omitempty"`
}

// WorkExperienceEntry is a single position held at one company.
// Entries without a company name are discarded before reaching the record.
type WorkExperienceEntry struct {
	CompanyName string `json:"company_name" validate:"required"`
	JobTitle    string `json:"job_title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
}

// ParsingMetadata records how a resume was parsed.
type ParsingMetadata struct {
	ElapsedSeconds   float64     `json:"elapsed_seconds"`
	SourceTextLength int         `json:"source_text_length"`
	MethodUsed       ParseMethod `json:"method_used"`
}

// ResumeRecord is the canonical output of one extraction run.
// One record is created per invocation via NewResumeRecord; concurrent
// field-group tasks populate disjoint top-level fields, then the output
// normalizer finalizes it. It is never mutated after normalization.
type ResumeRecord struct {
	CandidateName           string                `json:"candidate_name"`
	JobTitle                string                `json:"job_title"`
	Bio                     string                `json:"bio"`
	ContactInfo             ContactInfo           `json:"contact_info"`
	Skills                  []string              `json:"skills"`
	Education               []EducationEntry      `json:"education"`
	WorkExperience          []WorkExperienceEntry `json:"work_experience"`
	ProfessionalDevelopment []string              `json:"professional_development"`
	OtherInfo               []string              `json:"other_info"`
	ParsingMetadata         ParsingMetadata       `json:"parsing_metadata"`
}

// NewResumeRecord returns a fresh record with all list fields initialized.
// Every extraction run must call this; records are never built from a
// shared template value.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		ContactInfo: ContactInfo{
			EmailAddresses: []string{},
			PersonalURLs:   []string{},
		},
		Skills:                  []string{},
		Education:               []EducationEntry{},
		WorkExperience:          []WorkExperienceEntry{},
		ProfessionalDevelopment: []string{},
		OtherInfo:               []string{},
	}
}

// Statistics summarizes per-section counts for a parsed record.
type Statistics struct {
	WorkExperienceCount          int `json:"work_experience_count"`
	EducationCount               int `json:"education_count"`
	SkillsCount                  int `json:"skills_count"`
	ProfessionalDevelopmentCount int `json:"professional_development_count"`
	OtherInfoCount               int `json:"other_info_count"`
}

// Stats returns section counts for a record.
func Stats(r *ResumeRecord) Statistics {
	return Statistics{
		WorkExperienceCount:          len(r.WorkExperience),
		EducationCount:               len(r.Education),
		SkillsCount:                  len(r.Skills),
		ProfessionalDevelopmentCount: len(r.ProfessionalDevelopment),
		OtherInfoCount:               len(r.OtherInfo),
	}
}

// Equal reports whether two records are equal under the data model's
// equality: skills compare as sets, everything else compares in order.
func (r *ResumeRecord) Equal(other *ResumeRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.CandidateName != other.CandidateName ||
		r.JobTitle != other.JobTitle ||
		r.Bio != other.Bio ||
		r.ParsingMetadata != other.ParsingMetadata {
		return false
	}
	if !contactEqual(r.ContactInfo, other.ContactInfo) {
		return false
	}
	if !stringSetEqual(r.Skills, other.Skills) {
		return false
	}
	if !stringsEqual(r.ProfessionalDevelopment, other.ProfessionalDevelopment) ||
		!stringsEqual(r.OtherInfo, other.OtherInfo) {
		return false
	}
	if len(r.Education) != len(other.Education) {
		return false
	}
	for i := range r.Education {
		if r.Education[i] != other.Education[i] {
			return false
		}
	}
	if len(r.WorkExperience) != len(other.WorkExperience) {
		return false
	}
	for i := range r.WorkExperience {
		if r.WorkExperience[i] != other.WorkExperience[i] {
			return false
		}
	}
	return true
}

func contactEqual(a, b ContactInfo) bool {
	return a.Location == b.Location &&
		a.PhoneNumber == b.PhoneNumber &&
		stringsEqual(a.EmailAddresses, b.EmailAddresses) &&
		stringsEqual(a.PersonalURLs, b.PersonalURLs)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// stringSetEqual compares two string slices ignoring order and case.
func stringSetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[strings.ToLower(s)]++
	}
	for _, s := range b {
		key := strings.ToLower(s)
		seen[key]--
		if seen[key] < 0 {
			return false
		}
	}
	return true
}
