package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *ResumeRecord {
	r := NewResumeRecord()
	r.CandidateName = "Jane A. Doe"
	r.JobTitle = "Senior Software Engineer"
	r.Bio = "Engineer with a decade of backend experience."
	r.ContactInfo.Location = "Lisbon, Portugal"
	r.ContactInfo.PhoneNumber = "+1 415 555 0134"
	r.ContactInfo.EmailAddresses = []string{"jane.doe@example.com"}
	r.ContactInfo.PersonalURLs = []string{"https://github.com/janedoe"}
	r.Skills = []string{"Python", "SQL", "Docker"}
	r.Education = []EducationEntry{
		{Qualification: "BSc Computer Science", Establishment: "MIT", Country: "USA", Year: "2014"},
	}
	r.WorkExperience = []WorkExperienceEntry{
		{CompanyName: "Acme", JobTitle: "Engineer", StartDate: "2018", EndDate: DateNone},
	}
	r.ProfessionalDevelopment = []string{"AWS Certified Solutions Architect"}
	r.OtherInfo = []string{"Fluent in French"}
	r.ParsingMetadata = ParsingMetadata{ElapsedSeconds: 1.5, SourceTextLength: 980, MethodUsed: MethodStructured}
	return r
}

func TestNewResumeRecordInitializesLists(t *testing.T) {
	r := NewResumeRecord()

	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.WorkExperience)
	assert.NotNil(t, r.ProfessionalDevelopment)
	assert.NotNil(t, r.OtherInfo)
	assert.NotNil(t, r.ContactInfo.EmailAddresses)
	assert.NotNil(t, r.ContactInfo.PersonalURLs)
}

func TestNewResumeRecordReturnsFreshValues(t *testing.T) {
	a := NewResumeRecord()
	b := NewResumeRecord()

	a.Skills = append(a.Skills, "Go")
	assert.Empty(t, b.Skills, "records must not share backing storage")
}

func TestJSONRoundTrip(t *testing.T) {
	original := sampleRecord()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var parsed ResumeRecord
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.True(t, original.Equal(&parsed))
}

func TestJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(sampleRecord())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"candidate_name", "job_title", "bio", "contact_info", "skills",
		"education", "work_experience", "professional_development",
		"other_info", "parsing_metadata",
	} {
		assert.Contains(t, raw, key)
	}

	var contact map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["contact_info"], &contact))
	for _, key := range []string{"location", "phone_number", "email_addresses", "personal_urls"} {
		assert.Contains(t, contact, key)
	}
}

func TestEqualIgnoresSkillOrder(t *testing.T) {
	a := sampleRecord()
	b := sampleRecord()
	b.Skills = []string{"Docker", "Python", "SQL"}

	assert.True(t, a.Equal(b))
}

func TestEqualDetectsDifferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ResumeRecord)
	}{
		{"name differs", func(r *ResumeRecord) { r.CandidateName = "Someone Else" }},
		{"extra skill", func(r *ResumeRecord) { r.Skills = append(r.Skills, "Rust") }},
		{"email order matters", func(r *ResumeRecord) {
			r.ContactInfo.EmailAddresses = []string{"other@example.com"}
		}},
		{"education differs", func(r *ResumeRecord) { r.Education[0].Year = "2015" }},
		{"work experience differs", func(r *ResumeRecord) { r.WorkExperience[0].EndDate = "2020" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleRecord()
			b := sampleRecord()
			tt.mutate(b)
			assert.False(t, a.Equal(b))
		})
	}
}

func TestStats(t *testing.T) {
	stats := Stats(sampleRecord())

	assert.Equal(t, 1, stats.WorkExperienceCount)
	assert.Equal(t, 1, stats.EducationCount)
	assert.Equal(t, 3, stats.SkillsCount)
	assert.Equal(t, 1, stats.ProfessionalDevelopmentCount)
	assert.Equal(t, 1, stats.OtherInfoCount)
}
