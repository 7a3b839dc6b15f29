package ats

import (
	"strings"
	"testing"

	"resume-builder/resume/model"
)

func structuralDoc() model.Document {
	doc := model.New()
	doc.PersonalInfo = model.PersonalInfo{FullName: "Sam Field", Email: "sam@example.com"}
	doc.ProfessionalSummary = "Experienced tradesperson."
	doc.Skills = []string{"Welding", "Plumbing", "Carpentry", "Masonry", "Roofing"}
	doc.WorkExperience = []model.WorkExperience{
		{
			ID:          "exp1",
			Company:     "Field Co",
			Position:    "Site Supervisor",
			Description: []string{"Oversaw crews.", "Handled schedules."},
		},
	}
	doc.Education = []model.Education{
		{ID: "edu1", Institution: "Trade School", Degree: "Diploma", Field: "Construction"},
	}
	return doc
}

func TestScoreEmptyDocument(t *testing.T) {
	result := Score(model.New())

	if result.Score != 0 {
		t.Fatalf("expected score 0, got %d", result.Score)
	}
	if len(result.Suggestions) != maxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", maxSuggestions, len(result.Suggestions))
	}
	if !strings.Contains(result.Suggestions[0], "score is low") {
		t.Fatalf("expected low-score prefix, got %q", result.Suggestions[0])
	}
	if len(result.MissingKeywords) != maxMissingKeywords {
		t.Fatalf("expected %d missing keywords, got %d", maxMissingKeywords, len(result.MissingKeywords))
	}
}

func TestScoreStructureWithoutKeywords(t *testing.T) {
	result := Score(structuralDoc())

	// All structural points, zero keyword coverage.
	if result.Score != 60 {
		t.Fatalf("expected score 60, got %d", result.Score)
	}
	if !strings.Contains(result.Suggestions[0], "score is low") {
		t.Fatalf("expected low-score prefix, got %q", result.Suggestions[0])
	}
}

func TestScoreKeywordCoverage(t *testing.T) {
	doc := structuralDoc()
	doc.Skills = []string{
		"Python", "JavaScript", "React", "Node", "Java",
		"SQL", "AWS", "Docker", "Kubernetes", "TypeScript",
	}
	doc.ProfessionalSummary = "Agile scrum delivery with git, api design and leadership."

	result := Score(doc)

	// 15 of 49 keywords found: 15*40/49 = 12 keyword points on top of 60.
	if result.Score != 72 {
		t.Fatalf("expected score 72, got %d", result.Score)
	}
	if !strings.Contains(result.Suggestions[0], "Good progress") {
		t.Fatalf("expected mid-score prefix, got %q", result.Suggestions[0])
	}
	for _, keyword := range result.MissingKeywords {
		if keyword == "python" {
			t.Fatal("python reported missing despite being present")
		}
	}
	if len(result.MissingKeywords) != maxMissingKeywords {
		t.Fatalf("expected missing keywords capped at %d, got %d", maxMissingKeywords, len(result.MissingKeywords))
	}
}

func TestScoreMissingBullets(t *testing.T) {
	doc := structuralDoc()
	doc.WorkExperience[0].Description = []string{"Oversaw crews."}

	result := Score(doc)

	if result.Score != 50 {
		t.Fatalf("expected score 50, got %d", result.Score)
	}
	found := false
	for _, suggestion := range result.Suggestions {
		if strings.Contains(suggestion, "bullet points") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected bullet suggestion, got %v", result.Suggestions)
	}
}

func TestScoreProjectsCountTowardKeywords(t *testing.T) {
	doc := model.New()
	doc.Projects = []model.Project{
		{ID: "p1", Name: "Deploy tool", Description: "CI pipeline", Technologies: []string{"Docker", "Kubernetes"}},
	}

	result := Score(doc)

	for _, keyword := range result.MissingKeywords {
		if keyword == "docker" || keyword == "kubernetes" {
			t.Fatalf("%s reported missing despite project technologies", keyword)
		}
	}
}
