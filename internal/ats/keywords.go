package ats

// Keyword lists checked against the combined resume text. Coverage across
// all three lists drives the keyword portion of the score.
var (
	techKeywords = []string{
		"python", "javascript", "react", "node", "java", "sql", "aws", "docker",
		"kubernetes", "api", "mongodb", "postgresql", "git", "agile", "scrum",
		"typescript", "vue", "angular", "django", "fastapi", "flask", "spring",
	}

	businessKeywords = []string{
		"strategy", "analysis", "stakeholder", "project management", "budget",
		"leadership", "communication", "collaboration", "presentation", "excel",
		"powerpoint", "data analysis", "market research", "roi", "kpi",
	}

	generalKeywords = []string{
		"problem solving", "team player", "analytical", "detail-oriented",
		"time management", "multitasking", "organized", "self-motivated",
		"proactive", "adaptable", "innovative", "results-driven",
	}
)

func allKeywords() []string {
	out := make([]string, 0, len(techKeywords)+len(businessKeywords)+len(generalKeywords))
	out = append(out, techKeywords...)
	out = append(out, businessKeywords...)
	out = append(out, generalKeywords...)
	return out
}
