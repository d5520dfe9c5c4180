package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Normalize brings a record into its canonical output shape: list fields are
// non-nil, work experience entries without a company are dropped, missing
// dates carry the "None" sentinel and emails are deduplicated. Normalizing an
// already normalized record changes nothing.
func Normalize(r *types.ResumeRecord) {
	r.CandidateName = strings.TrimSpace(r.CandidateName)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.Bio = strings.TrimSpace(r.Bio)

	r.Skills = normalizeList(r.Skills)
	r.ProfessionalDevelopment = normalizeList(r.ProfessionalDevelopment)
	r.OtherInfo = normalizeList(r.OtherInfo)

	r.ContactInfo.Location = strings.TrimSpace(r.ContactInfo.Location)
	r.ContactInfo.PhoneNumber = strings.TrimSpace(r.ContactInfo.PhoneNumber)
	r.ContactInfo.EmailAddresses = dedupeList(normalizeList(r.ContactInfo.EmailAddresses))
	r.ContactInfo.PersonalURLs = dedupeList(normalizeList(r.ContactInfo.PersonalURLs))

	if r.Education == nil {
		r.Education = []types.EducationEntry{}
	}
	education := r.Education[:0]
	for _, e := range r.Education {
		e.Qualification = strings.TrimSpace(e.Qualification)
		if e.Qualification == "" {
			continue
		}
		e.Establishment = strings.TrimSpace(e.Establishment)
		e.Country = strings.TrimSpace(e.Country)
		e.Year = strings.TrimSpace(e.Year)
		education = append(education, e)
	}
	r.Education = education

	if r.WorkExperience == nil {
		r.WorkExperience = []types.WorkExperienceEntry{}
	}
	work := r.WorkExperience[:0]
	for _, w := range r.WorkExperience {
		w.CompanyName = strings.TrimSpace(w.CompanyName)
		if w.CompanyName == "" {
			continue
		}
		w.JobTitle = strings.TrimSpace(w.JobTitle)
		w.StartDate = normalizeDate(w.StartDate)
		w.EndDate = normalizeDate(w.EndDate)
		w.Description = strings.TrimSpace(w.Description)
		if w.Description == types.DateNone {
			w.Description = ""
		}
		work = append(work, w)
	}
	r.WorkExperience = work
}

// normalizeDate trims a date and substitutes the sentinel for missing values.
func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return types.DateNone
	}
	return date
}

// normalizeList trims entries and drops empty ones, always returning a
// non-nil slice.
func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// dedupeList removes case-insensitive duplicates, keeping first-seen order.
func dedupeList(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
