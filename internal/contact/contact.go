// Package contact finds contact identifiers (emails, profile URLs, phone
// numbers) in resume text with regular expressions. Results are
// deterministic and take precedence over model-produced values for the same
// fields.
package contact

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}\b`)
	githubRe   = regexp.MustCompile(`https://github\.com/[A-Za-z0-9_-]+`)
	linkedinRe = regexp.MustCompile(`https://www\.linkedin\.com/in/[A-Za-z0-9_-]+`)
	urlRe      = regexp.MustCompile(`https?://[^\s<>"')\]]+`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	digitRe    = regexp.MustCompile(`\d`)
)

// Social network hosts excluded from personal URLs.
var excludedHosts = []string{
	"facebook.com",
	"twitter.com",
	"instagram.com",
	"youtube.com",
}

// Emails returns the email addresses in text, deduplicated case-insensitively
// in first-seen order. Matching is case-insensitive but the original casing of
// the first occurrence is preserved.
func Emails(text string) []string {
	return dedupe(emailRe.FindAllString(text, -1))
}

// ProfileURLs returns GitHub and LinkedIn profile URLs found in text,
// deduplicated, GitHub matches first.
func ProfileURLs(text string) []string {
	matches := githubRe.FindAllString(text, -1)
	matches = append(matches, linkedinRe.FindAllString(text, -1)...)
	return dedupe(matches)
}

// PersonalURLs returns all http(s) URLs in text that are neither GitHub or
// LinkedIn profiles nor links to excluded social networks. Trailing
// punctuation commonly glued onto URLs in prose is stripped before matching.
func PersonalURLs(text string) []string {
	var urls []string
	for _, raw := range urlRe.FindAllString(text, -1) {
		url := strings.TrimRight(raw, ".,;:")
		if githubRe.MatchString(url) || linkedinRe.MatchString(url) {
			continue
		}
		if isExcludedHost(url) {
			continue
		}
		urls = append(urls, url)
	}
	return dedupe(urls)
}

// AllURLs returns profile URLs followed by personal URLs, deduplicated.
func AllURLs(text string) []string {
	return dedupe(append(ProfileURLs(text), PersonalURLs(text)...))
}

// PhoneNumbers returns candidate phone numbers in text. Matches with fewer
// than ten digits are discarded; they are dates or reference numbers, not
// dialable numbers.
func PhoneNumbers(text string) []string {
	var numbers []string
	for _, m := range phoneRe.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if len(digitRe.FindAllString(m, -1)) < 10 {
			continue
		}
		numbers = append(numbers, m)
	}
	return dedupe(numbers)
}

func isExcludedHost(url string) bool {
	lower := strings.ToLower(url)
	for _, host := range excludedHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates case-insensitively, keeping first-seen order and
// casing. Always returns a non-nil slice.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
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
