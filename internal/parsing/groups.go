package parsing

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/jonathan/resume-parser/internal/contact"
	"github.com/jonathan/resume-parser/internal/document"
	"github.com/jonathan/resume-parser/internal/heuristic"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/types"
)

// Field group names, used for task naming and failure reporting.
const (
	groupBasicInfo      = "basic-info"
	groupSkills         = "skills"
	groupEducation      = "education"
	groupWorkExperience = "work-experience"
)

// runner owns one extraction run. Field groups write to disjoint top-level
// fields of record; mu guards the work experience list (appended to by
// concurrent drill-down tasks) and the degraded flag.
type runner struct {
	client llm.Client
	tier   llm.ModelTier
	resume string
	lines  []string

	mu       sync.Mutex
	record   *types.ResumeRecord
	degraded bool
}

func newRunner(client llm.Client, tier llm.ModelTier, resume string) *runner {
	return &runner{
		client: client,
		tier:   tier,
		resume: resume,
		lines:  document.Lines(resume),
		record: types.NewResumeRecord(),
	}
}

// markDegraded records that at least one group left its primary strategy.
func (r *runner) markDegraded() {
	r.mu.Lock()
	r.degraded = true
	r.mu.Unlock()
}

func (r *runner) resumeData() map[string]string {
	return map[string]string{"Resume": r.resume}
}

// basicInfoPayload is the primary JSON shape for the basic info group.
type basicInfoPayload struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	JobTitle string `json:"job_title"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// extractBasicInfo fills name, title, bio and contact fields. Any anomaly on
// the primary call degrades to single-field text queries, then to the
// deterministic extractor. Emails and URLs always come from the contact
// scanner afterwards, regardless of which strategy ran.
func (r *runner) extractBasicInfo(ctx context.Context) error {
	defer r.applyContactScan()

	prompt, err := prompts.Extraction(prompts.KeyBasicInfo, r.resumeData())
	if err != nil {
		return err
	}

	payload, err := llm.ExtractObject[basicInfoPayload](ctx, r.client, prompt, r.tier)
	if err == nil {
		r.record.CandidateName = strings.TrimSpace(payload.Name)
		r.record.JobTitle = strings.TrimSpace(payload.JobTitle)
		r.record.Bio = strings.TrimSpace(payload.Bio)
		r.record.ContactInfo.Location = strings.TrimSpace(payload.Location)
		r.record.ContactInfo.PhoneNumber = strings.TrimSpace(payload.Phone)
		return nil
	}

	r.markDegraded()
	return r.fallbackBasicInfo(ctx)
}

// fallbackBasicInfo asks for name and job title as plain text, one query
// each. A failed query falls through to the deterministic extractor for that
// field.
func (r *runner) fallbackBasicInfo(ctx context.Context) error {
	name, err := r.queryField(ctx, "name")
	if err != nil {
		name = heuristic.Name(r.lines)
	}
	r.record.CandidateName = name

	title, err := r.queryField(ctx, "current or last job title")
	if err != nil {
		title = heuristic.JobTitle(r.resume)
	}
	r.record.JobTitle = title

	return nil
}

func (r *runner) queryField(ctx context.Context, query string) (string, error) {
	prompt, err := prompts.Extraction(prompts.KeyFallbackBasic, map[string]string{
		"Query":  query,
		"Resume": r.resume,
	})
	if err != nil {
		return "", err
	}

	answer, err := llm.CallText(ctx, r.client, prompt, r.tier)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// applyContactScan overwrites emails and URLs with the deterministic scan and
// fills the phone number only when the model produced none.
func (r *runner) applyContactScan() {
	r.record.ContactInfo.EmailAddresses = contact.Emails(r.resume)
	r.record.ContactInfo.PersonalURLs = contact.AllURLs(r.resume)

	if r.record.ContactInfo.PhoneNumber == "" {
		if phones := contact.PhoneNumbers(r.resume); len(phones) > 0 {
			r.record.ContactInfo.PhoneNumber = phones[0]
		}
	}
}

// extractSkills fills skills, professional development and other info. The
// primary response must be a JSON object carrying a "skills" key; anything
// else degrades to the comma-list fallback, then to the keyword extractor.
func (r *runner) extractSkills(ctx context.Context) error {
	prompt, err := prompts.Extraction(prompts.KeySkills, r.resumeData())
	if err != nil {
		return err
	}

	text, err := llm.CallJSON(ctx, r.client, prompt, r.tier)
	if err == nil {
		if payload, perr := decodeSkillsPayload(text); perr == nil {
			r.record.Skills = payload.Skills
			r.record.ProfessionalDevelopment = payload.ProfessionalDevelopment
			r.record.OtherInfo = payload.OtherInfo
			return nil
		}
	}

	r.markDegraded()
	return r.fallbackSkills(ctx)
}

type skillsPayload struct {
	Skills                  []string
	ProfessionalDevelopment []string
	OtherInfo               []string
}

// decodeSkillsPayload requires the "skills" key to be present; a JSON object
// without it is treated as a parse failure, not an empty result.
func decodeSkillsPayload(text string) (skillsPayload, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(text)), &raw); err != nil {
		return skillsPayload{}, &ParseError{Message: "skills response is not a JSON object", Cause: err}
	}

	skillsMsg, ok := raw["skills"]
	if !ok {
		return skillsPayload{}, &ParseError{Message: "skills key missing from response"}
	}

	payload := skillsPayload{}
	if err := json.Unmarshal(skillsMsg, &payload.Skills); err != nil {
		return skillsPayload{}, &ParseError{Message: "skills value is not a string list", Cause: err}
	}

	// Optional sections; a bad shape here loses the section, not the group.
	if msg, ok := raw["professional_development"]; ok {
		_ = json.Unmarshal(msg, &payload.ProfessionalDevelopment)
	}
	if msg, ok := raw["other_info"]; ok {
		_ = json.Unmarshal(msg, &payload.OtherInfo)
	} else if msg, ok := raw["other"]; ok {
		_ = json.Unmarshal(msg, &payload.OtherInfo)
	}

	return payload, nil
}

// fallbackSkills asks for a comma-separated list. Professional development
// and other info stay empty on this path.
func (r *runner) fallbackSkills(ctx context.Context) error {
	prompt, err := prompts.Extraction(prompts.KeyFallbackSkills, r.resumeData())
	if err != nil {
		return err
	}

	answer, err := llm.CallText(ctx, r.client, prompt, r.tier)
	if err != nil {
		r.record.Skills = heuristic.Skills(r.resume)
		return nil
	}

	skills := make([]string, 0)
	for _, part := range strings.Split(answer, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	r.record.Skills = skills
	return nil
}

// extractEducation fills the education list. Zero items from a well-formed
// response is a success; only a failed call or unparsable payload degrades to
// the line-template fallback, then to the keyword extractor.
func (r *runner) extractEducation(ctx context.Context) error {
	prompt, err := prompts.Extraction(prompts.KeyEducationItems, r.resumeData())
	if err != nil {
		return err
	}

	result, err := llm.ExtractItems[types.EducationEntry](ctx, r.client, prompt, r.tier)
	if err == nil {
		r.record.Education = result.Items
		return nil
	}

	r.markDegraded()
	return r.fallbackEducation(ctx)
}

// fallbackEducation parses "Qualification, Establishment, Country, Year"
// lines. Rows without a qualification are dropped.
func (r *runner) fallbackEducation(ctx context.Context) error {
	prompt, err := prompts.Extraction(prompts.KeyFallbackEdu, r.resumeData())
	if err != nil {
		return err
	}

	answer, err := llm.CallText(ctx, r.client, prompt, r.tier)
	if err != nil {
		r.record.Education = heuristic.Education(r.lines)
		return nil
	}

	r.record.Education = parseEducationLines(answer)
	return nil
}

func parseEducationLines(answer string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		if line == "" || strings.Contains(lower, "answer") || lower == "none" {
			continue
		}

		fields := strings.Split(line, ",")
		entry := types.EducationEntry{Qualification: strings.TrimSpace(fields[0])}
		if entry.Qualification == "" {
			continue
		}
		if len(fields) > 1 {
			entry.Establishment = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			entry.Country = strings.TrimSpace(fields[2])
		}
		if len(fields) > 3 {
			entry.Year = strings.TrimSpace(fields[3])
		}
		entries = append(entries, entry)
	}
	return entries
}

// extractWorkExperience fills the work experience list. Zero items from a
// well-formed response is a success. On failure it degrades to the companies
// roster followed by one drill-down query per company.
func (r *runner) extractWorkExperience(ctx context.Context) error {
	prompt, err := prompts.Extraction(prompts.KeyWorkItems, r.resumeData())
	if err != nil {
		return err
	}

	result, err := llm.ExtractItems[types.WorkExperienceEntry](ctx, r.client, prompt, r.tier)
	if err == nil {
		r.record.WorkExperience = result.Items
		return nil
	}

	r.markDegraded()
	return r.fallbackWorkExperience(ctx)
}

// fallbackWorkExperience asks for a "company, role" roster and drills into
// each company concurrently. A company whose drill-down fails is skipped; the
// rest still land in the record.
func (r *runner) fallbackWorkExperience(ctx context.Context) error {
	prompt, err := prompts.Extraction(prompts.KeyCompanies, r.resumeData())
	if err != nil {
		return err
	}

	answer, err := llm.CallText(ctx, r.client, prompt, r.tier)
	if err != nil {
		return err
	}

	group := NewTaskGroup(ctx)
	for _, line := range strings.Split(answer, "\n") {
		if strings.Contains(strings.ToLower(line), "answer") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		company := strings.TrimSpace(fields[0])
		if company == "" {
			continue
		}
		role := ""
		if len(fields) > 1 {
			role = strings.TrimSpace(fields[1])
		}

		group.Go(company, func(ctx context.Context) error {
			return r.drillDownCompany(ctx, company, role)
		})
	}
	group.Wait()
	return nil
}

// drillDownCompany fetches one company's full entry and appends it to the
// record under the run mutex.
func (r *runner) drillDownCompany(ctx context.Context, company, role string) error {
	prompt, err := prompts.Extraction(prompts.KeyWorkDrilldown, map[string]string{
		"Company": company,
		"Role":    role,
		"Resume":  r.resume,
	})
	if err != nil {
		return err
	}

	entry, err := llm.ExtractObject[types.WorkExperienceEntry](ctx, r.client, prompt, r.tier)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.record.WorkExperience = append(r.record.WorkExperience, entry)
	r.mu.Unlock()
	return nil
}

// fillDeterministic populates the record using only the deterministic
// extractors. This is the whole pipeline when no model client is configured.
func (r *runner) fillDeterministic() {
	r.record.CandidateName = heuristic.Name(r.lines)
	r.record.JobTitle = heuristic.JobTitle(r.resume)
	r.record.Skills = heuristic.Skills(r.resume)
	r.record.Education = heuristic.Education(r.lines)
	r.applyContactScan()
}
