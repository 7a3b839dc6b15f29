// Package view projects a resume document into read models for rendering.
// Nothing in this package mutates a document.
package view

import "resume-builder/resume/model"

// Section identifies one editable section of the form.
type Section string

const (
	SectionPersonal       Section = "personal"
	SectionSummary        Section = "summary"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionTemplate       Section = "template"
)

// Select resolves a requested section id against the currently active one.
// Unknown ids leave the active section unchanged, so stale UI state cannot
// blank the form.
func Select(active Section, requested string) Section {
	switch Section(requested) {
	case SectionPersonal, SectionSummary, SectionSkills, SectionExperience,
		SectionEducation, SectionProjects, SectionCertifications, SectionTemplate:
		return Section(requested)
	default:
		return active
	}
}

// SectionView is the read/write model for one selected section. Only the
// fields belonging to the selected section are populated.
type SectionView struct {
	Section        Section               `json:"section"`
	PersonalInfo   *model.PersonalInfo   `json:"personal_info,omitempty"`
	Summary        string                `json:"summary,omitempty"`
	SkillsText     string                `json:"skills_text,omitempty"`
	Experience     []ExperienceEntry     `json:"experience,omitempty"`
	Education      []model.Education     `json:"education,omitempty"`
	Projects       []model.Project       `json:"projects,omitempty"`
	Certifications []model.Certification `json:"certifications,omitempty"`
	TemplateID     string                `json:"template_id,omitempty"`
}

// ExperienceEntry is a work experience item plus its display end date.
// While Current holds, the displayed end date is "Present" regardless of the
// stored value; the stored value itself is untouched.
type ExperienceEntry struct {
	model.WorkExperience
	DisplayEndDate string `json:"display_end_date"`
}

// Project maps the selected section onto the subset of the document it
// renders and edits.
func Project(doc model.Document, section Section) SectionView {
	doc = doc.Normalize()
	out := SectionView{Section: section}

	switch section {
	case SectionPersonal:
		info := doc.PersonalInfo
		out.PersonalInfo = &info
	case SectionSummary:
		out.Summary = doc.ProfessionalSummary
	case SectionSkills:
		out.SkillsText = RenderSkills(doc.Skills)
	case SectionExperience:
		out.Experience = make([]ExperienceEntry, 0, len(doc.WorkExperience))
		for _, exp := range doc.WorkExperience {
			out.Experience = append(out.Experience, ExperienceEntry{
				WorkExperience: exp,
				DisplayEndDate: DisplayEndDate(exp),
			})
		}
	case SectionEducation:
		out.Education = doc.Education
	case SectionProjects:
		out.Projects = doc.Projects
	case SectionCertifications:
		out.Certifications = doc.Certifications
	case SectionTemplate:
		out.TemplateID = doc.TemplateID
	}
	return out
}

// DisplayEndDate returns the end date to render for a work experience entry.
func DisplayEndDate(exp model.WorkExperience) string {
	if exp.Current {
		return "Present"
	}
	return exp.EndDate
}
