package view

import "resume-builder/resume/model"

// FeedbackView is the stateless projection of the last fetched feedback
// result. Available is false when no result has ever been fetched; that is
// absence, not an error state.
type FeedbackView struct {
	Available       bool     `json:"available"`
	Score           int      `json:"score"`
	Suggestions     []string `json:"suggestions"`
	MissingKeywords []string `json:"missing_keywords"`
}

// ProjectFeedback renders a feedback result, or an empty view when none
// exists yet.
func ProjectFeedback(result *model.FeedbackResult) FeedbackView {
	if result == nil {
		return FeedbackView{Suggestions: []string{}, MissingKeywords: []string{}}
	}
	out := FeedbackView{
		Available:       true,
		Score:           result.Score,
		Suggestions:     append([]string(nil), result.Suggestions...),
		MissingKeywords: append([]string(nil), result.MissingKeywords...),
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	if out.MissingKeywords == nil {
		out.MissingKeywords = []string{}
	}
	return out
}
