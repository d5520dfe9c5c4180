package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestNormalizeNilListsBecomeEmpty(t *testing.T) {
	r := &types.ResumeRecord{}

	Normalize(r)

	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.WorkExperience)
	assert.NotNil(t, r.ProfessionalDevelopment)
	assert.NotNil(t, r.OtherInfo)
	assert.NotNil(t, r.ContactInfo.EmailAddresses)
	assert.NotNil(t, r.ContactInfo.PersonalURLs)
}

func TestNormalizeDropsBlankCompanies(t *testing.T) {
	r := types.NewResumeRecord()
	r.WorkExperience = []types.WorkExperienceEntry{
		{CompanyName: "Acme", JobTitle: "Engineer"},
		{CompanyName: "   ", JobTitle: "Ghost"},
		{CompanyName: "", JobTitle: "Ghost"},
	}

	Normalize(r)

	assert.Len(t, r.WorkExperience, 1)
	assert.Equal(t, "Acme", r.WorkExperience[0].CompanyName)
}

func TestNormalizeDefaultsMissingDates(t *testing.T) {
	r := types.NewResumeRecord()
	r.WorkExperience = []types.WorkExperienceEntry{
		{CompanyName: "Acme", StartDate: "", EndDate: "  "},
	}

	Normalize(r)

	assert.Equal(t, types.DateNone, r.WorkExperience[0].StartDate)
	assert.Equal(t, types.DateNone, r.WorkExperience[0].EndDate)
}

func TestNormalizeClearsNoneDescription(t *testing.T) {
	r := types.NewResumeRecord()
	r.WorkExperience = []types.WorkExperienceEntry{
		{CompanyName: "Acme", Description: "None"},
	}

	Normalize(r)

	assert.Empty(t, r.WorkExperience[0].Description)
}

func TestNormalizeDedupesEmails(t *testing.T) {
	r := types.NewResumeRecord()
	r.ContactInfo.EmailAddresses = []string{"Jane@example.com", "jane@example.com", " ", "other@example.com"}

	Normalize(r)

	assert.Equal(t, []string{"Jane@example.com", "other@example.com"}, r.ContactInfo.EmailAddresses)
}

func TestNormalizeDropsEducationWithoutQualification(t *testing.T) {
	r := types.NewResumeRecord()
	r.Education = []types.EducationEntry{
		{Qualification: "BSc", Establishment: " MIT "},
		{Qualification: "  "},
	}

	Normalize(r)

	assert.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].Establishment)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	r := types.NewResumeRecord()
	r.CandidateName = "  Jane Doe "
	r.Skills = []string{" Go ", "", "Python"}
	r.ContactInfo.EmailAddresses = []string{"jane@example.com", "JANE@example.com"}
	r.WorkExperience = []types.WorkExperienceEntry{
		{CompanyName: " Acme ", Description: "None"},
	}

	Normalize(r)
	first := *r
	firstWork := append([]types.WorkExperienceEntry{}, r.WorkExperience...)

	Normalize(r)

	assert.True(t, first.Equal(r))
	assert.Equal(t, firstWork, r.WorkExperience)
}
