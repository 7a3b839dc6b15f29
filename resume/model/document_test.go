package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsStructurallyComplete(t *testing.T) {
	doc := New()

	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.WorkExperience)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Certifications)
	assert.Empty(t, doc.ID)
}

func TestNormalizeFillsAbsentFields(t *testing.T) {
	// A deserialized record with every collection omitted must come out with
	// the same base shape as a fresh draft.
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Backend Resume"}`), &doc))

	normalized := doc.Normalize()

	assert.NotNil(t, normalized.Skills)
	assert.NotNil(t, normalized.WorkExperience)
	assert.NotNil(t, normalized.Education)
	assert.NotNil(t, normalized.Projects)
	assert.NotNil(t, normalized.Certifications)
	assert.Equal(t, "Backend Resume", normalized.Title)
}

func TestNormalizeFillsNestedSlices(t *testing.T) {
	doc := Document{
		WorkExperience: []WorkExperience{{ID: "w1", Company: "Acme"}},
		Projects:       []Project{{ID: "p1", Name: "CLI"}},
	}

	normalized := doc.Normalize()

	assert.NotNil(t, normalized.WorkExperience[0].Description)
	assert.NotNil(t, normalized.Projects[0].Technologies)
}

func TestCloneSharesNothing(t *testing.T) {
	doc := New()
	doc.Skills = []string{"Go", "SQL"}
	doc.WorkExperience = []WorkExperience{{ID: "w1", Company: "Acme", Description: []string{"built things"}}}

	clone := doc.Clone()
	clone.Skills[0] = "Rust"
	clone.WorkExperience[0].Company = "Globex"
	clone.WorkExperience[0].Description[0] = "rewrote things"

	assert.Equal(t, "Go", doc.Skills[0])
	assert.Equal(t, "Acme", doc.WorkExperience[0].Company)
	assert.Equal(t, "built things", doc.WorkExperience[0].Description[0])
}

func TestEqualIsStructural(t *testing.T) {
	a := New()
	a.Title = "Resume"
	a.Skills = []string{"Go"}

	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Skills = append(b.Skills, "SQL")
	assert.False(t, a.Equal(b))

	// Nil and empty slices compare equal: absence is normalized away.
	c := Document{Title: "Resume", Skills: []string{"Go"}}
	assert.True(t, a.Equal(c))
}
