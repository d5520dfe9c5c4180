package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtractionPrompts(t *testing.T) {
	ClearCache()

	keys := []string{
		KeyBasicInfo, KeySkills, KeyEducationItems, KeyWorkItems,
		KeyFallbackBasic, KeyFallbackSkills, KeyFallbackEdu,
		KeyCompanies, KeyWorkDrilldown,
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			prompt, err := Get(ExtractionFile, key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get(ExtractionFile, "no-such-prompt")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-prompt")
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", KeySkills)

	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	result := Format("What is the {{.Query}}?\n{{.Resume}}", map[string]string{
		"Query":  "candidate name",
		"Resume": "Jane Doe",
	})

	assert.Equal(t, "What is the candidate name?\nJane Doe", result)
}

func TestExtractionFillsPlaceholders(t *testing.T) {
	prompt, err := Extraction(KeyWorkDrilldown, map[string]string{
		"Company": "Acme",
		"Role":    "Engineer",
		"Resume":  "resume text",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "Engineer")
	assert.Contains(t, prompt, "resume text")
	assert.False(t, strings.Contains(prompt, "{{."), "all placeholders must be filled")
}

func TestMustGetPanicsOnMissingKey(t *testing.T) {
	assert.Panics(t, func() { MustGet(ExtractionFile, "no-such-prompt") })
}

func TestListIncludesAllKeys(t *testing.T) {
	keys, err := List(ExtractionFile)
	require.NoError(t, err)

	assert.Len(t, keys, 9)
	assert.Contains(t, keys, KeyCompanies)
}
