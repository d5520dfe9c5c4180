// Package heuristic implements the deterministic field extractor. It covers
// candidate name, job title, skills and education with keyword and pattern
// matching over plain text. The pipeline uses it both as the backstop when a
// model fallback fails and as the whole extraction path when no model client
// is configured.
package heuristic

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/types"
)

// skillsVocabulary is the keyword vocabulary matched case-insensitively as
// substrings. Multi-word terms match across spaces exactly as written.
var skillsVocabulary = []string{
	"python", "java", "javascript", "html", "css", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "fastapi", "sql", "nosql",
	"mongodb", "postgresql", "mysql", "aws", "azure", "gcp", "docker",
	"kubernetes", "jenkins", "git", "github", "gitlab", "ci/cd",
	"machine learning", "ai", "data analysis", "pandas", "numpy",
	"tensorflow", "pytorch", "scikit-learn", "tableau", "power bi",
	"excel", "word", "powerpoint", "project management", "agile",
	"scrum", "jira", "confluence", "rest api", "graphql", "microservices",
}

// educationTerms flag a line as education-related when any term appears in it.
var educationTerms = []string{
	"bachelor", "master", "phd", "doctorate", "mba", "bs", "ms", "ba", "ma",
	"university", "college", "institute", "school", "degree", "graduated",
}

// nameDenylist disqualifies a line from being the candidate name.
var nameDenylist = []string{
	"resume", "cv", "curriculum", "vitae", "phone", "email", "linkedin",
}

// jobTitleRes match common title shapes in lowercased text, in priority order.
var jobTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:senior|junior|lead|principal)\s+[a-z]+\s+[a-z]+\b`),
	regexp.MustCompile(`\b(?:software|web|frontend|backend|full.stack|data|devops|cloud)\s+[a-z]+\b`),
	regexp.MustCompile(`\b(?:engineer|developer|architect|analyst|scientist|manager|director)\b`),
}

const maxEducationLines = 5

// Name scans the first five lines for a plausible candidate name: two to four
// words, all title-cased, with no resume boilerplate terms. Returns "" when no
// line qualifies.
func Name(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || containsAny(strings.ToLower(line), nameDenylist) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allTitleCase(words) {
			return line
		}
	}
	return ""
}

// JobTitle returns the first job title matched by the title patterns,
// title-cased, or "" when none match. Earlier patterns are more specific and
// win over later ones.
func JobTitle(text string) string {
	lower := strings.ToLower(text)
	for _, re := range jobTitleRes {
		if m := re.FindString(lower); m != "" {
			return titleCase(m)
		}
	}
	return ""
}

// Skills returns the vocabulary terms present in text, title-cased and
// sorted. Matching is case-insensitive substring containment, so "javascript"
// in the text also surfaces "java".
func Skills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, skill := range skillsVocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, titleCase(skill))
		}
	}
	sort.Strings(found)
	return found
}

// EducationLines returns up to five lines mentioning an education term, in
// document order.
func EducationLines(lines []string) []string {
	found := make([]string, 0, maxEducationLines)
	for _, line := range lines {
		if containsAny(strings.ToLower(line), educationTerms) {
			found = append(found, strings.TrimSpace(line))
			if len(found) == maxEducationLines {
				break
			}
		}
	}
	return found
}

// Education wraps EducationLines results as entries, with the whole line as
// the qualification.
func Education(lines []string) []types.EducationEntry {
	raw := EducationLines(lines)
	entries := make([]types.EducationEntry, 0, len(raw))
	for _, line := range raw {
		entries = append(entries, types.EducationEntry{Qualification: line})
	}
	return entries
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// allTitleCase reports whether every word longer than one rune starts with an
// uppercase letter followed by no further uppercase letters. Initials like
// "A." are exempt.
func allTitleCase(words []string) bool {
	for _, w := range words {
		runes := []rune(w)
		if len(runes) <= 1 {
			continue
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		for j, r := range runes {
			if unicode.IsLetter(r) {
				runes[j] = unicode.ToUpper(r)
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
