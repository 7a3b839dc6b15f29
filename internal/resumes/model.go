package resumes

import (
	"time"

	"resume-builder/resume/model"
)

// Resume is a persisted resume document owned by a user, with the screening
// score computed at the last save.
type Resume struct {
	model.Document
	UserID    string    `json:"user_id"`
	ATSScore  int       `json:"ats_score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the list-view projection of a persisted resume.
type Summary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TemplateID string    `json:"template_id"`
	ATSScore   int       `json:"ats_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r Resume) summary() Summary {
	return Summary{
		ID:         r.ID,
		Title:      r.Title,
		TemplateID: r.TemplateID,
		ATSScore:   r.ATSScore,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
