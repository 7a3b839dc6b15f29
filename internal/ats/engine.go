// Package ats scores a resume document for automated-screening friendliness
// and produces improvement suggestions.
package ats

import (
	"strings"

	"resume-builder/resume/model"
)

const (
	keywordWeight       = 40
	personalInfoPoints  = 10
	summaryPoints       = 10
	skillsPoints        = 10
	experiencePoints    = 15
	bulletPoints        = 10
	educationPoints     = 5
	minSkills           = 5
	minBulletsPerEntry  = 2
	maxSuggestions      = 5
	maxMissingKeywords  = 10
	lowScoreThreshold   = 70
	solidScoreThreshold = 85
)

// Score evaluates a document and returns the feedback triple. The score is
// 0-100: up to 40 points for keyword coverage, the rest for structural
// completeness.
func Score(doc model.Document) model.FeedbackResult {
	doc = doc.Normalize()

	text := combinedText(doc)
	score := 0
	suggestions := []string{}
	missing := []string{}

	found := 0
	keywords := allKeywords()
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			found++
		} else {
			missing = append(missing, keyword)
		}
	}
	score += found * keywordWeight / len(keywords)

	if hasPersonalInfo(doc.PersonalInfo) {
		score += personalInfoPoints
	} else {
		suggestions = append(suggestions, "Add personal information section")
	}

	if strings.TrimSpace(doc.ProfessionalSummary) != "" {
		score += summaryPoints
	} else {
		suggestions = append(suggestions, "Add a professional summary")
	}

	if len(doc.Skills) >= minSkills {
		score += skillsPoints
	} else {
		suggestions = append(suggestions, "Add at least 5 relevant skills")
	}

	if len(doc.WorkExperience) > 0 {
		score += experiencePoints
		if hasBullets(doc.WorkExperience) {
			score += bulletPoints
		} else {
			suggestions = append(suggestions, "Add bullet points to work experience descriptions")
		}
	} else {
		suggestions = append(suggestions, "Add work experience")
	}

	if len(doc.Education) > 0 {
		score += educationPoints
	} else {
		suggestions = append(suggestions, "Add education information")
	}

	if score > 100 {
		score = 100
	}

	switch {
	case score < lowScoreThreshold:
		suggestions = append([]string{"Your ATS score is low. Add more relevant keywords and complete all sections."}, suggestions...)
	case score < solidScoreThreshold:
		suggestions = append([]string{"Good progress! Add more industry-specific keywords to improve your score."}, suggestions...)
	default:
		suggestions = append([]string{"Excellent! Your resume is well-optimized for ATS systems."}, suggestions...)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return model.FeedbackResult{
		Score:           score,
		Suggestions:     suggestions,
		MissingKeywords: missing,
	}
}

func combinedText(doc model.Document) string {
	var b strings.Builder
	b.WriteString(doc.ProfessionalSummary)
	b.WriteString(" ")
	b.WriteString(strings.Join(doc.Skills, " "))
	b.WriteString(" ")
	for _, exp := range doc.WorkExperience {
		b.WriteString(exp.Position)
		b.WriteString(" ")
		b.WriteString(strings.Join(exp.Description, " "))
		b.WriteString(" ")
	}
	for _, edu := range doc.Education {
		b.WriteString(edu.Degree)
		b.WriteString(" ")
		b.WriteString(edu.Field)
		b.WriteString(" ")
	}
	for _, project := range doc.Projects {
		b.WriteString(project.Name)
		b.WriteString(" ")
		b.WriteString(project.Description)
		b.WriteString(" ")
		b.WriteString(strings.Join(project.Technologies, " "))
		b.WriteString(" ")
	}
	return strings.ToLower(b.String())
}

func hasPersonalInfo(info model.PersonalInfo) bool {
	return info.FullName != "" || info.Email != "" || info.Phone != "" ||
		info.Location != "" || info.LinkedIn != "" || info.Portfolio != ""
}

func hasBullets(entries []model.WorkExperience) bool {
	for _, exp := range entries {
		if len(exp.Description) >= minBulletsPerEntry {
			return true
		}
	}
	return false
}
