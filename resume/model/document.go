package model

import "reflect"

// Document is the complete structured content of one resume. A document with
// an empty ID is an unsaved draft; once persisted the ID never changes.
type Document struct {
	ID                  string           `json:"id,omitempty"`
	Title               string           `json:"title"`
	TemplateID          string           `json:"template_id"`
	PersonalInfo        PersonalInfo     `json:"personal_info"`
	ProfessionalSummary string           `json:"professional_summary"`
	Skills              []string         `json:"skills"`
	WorkExperience      []WorkExperience `json:"work_experience"`
	Education           []Education      `json:"education"`
	Projects            []Project        `json:"projects"`
	Certifications      []Certification  `json:"certifications"`
}

// PersonalInfo holds optional contact fields. Format validation (email shape
// and the like) is a presentation concern, not a document invariant.
type PersonalInfo struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// WorkExperience is one work history entry. Current and EndDate are
// independent: while Current is true the stored EndDate is not authoritative
// for display, but it is never cleared.
type WorkExperience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GPA         string `json:"gpa"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

// Certification is one certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credential_id"`
}

// FeedbackResult is the externally computed screening feedback for a
// persisted document. It is a snapshot, not part of the document.
type FeedbackResult struct {
	Score           int      `json:"score"`
	Suggestions     []string `json:"suggestions"`
	MissingKeywords []string `json:"missing_keywords"`
}

// New returns an empty draft with every collection present and empty.
func New() Document {
	return Document{
		Skills:         []string{},
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}

// Normalize returns a copy with every nil slice replaced by an empty one, so
// consumers never branch on field presence. Deserialized records pass through
// here before use.
func (d Document) Normalize() Document {
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	for i := range d.WorkExperience {
		if d.WorkExperience[i].Description == nil {
			d.WorkExperience[i].Description = []string{}
		}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
	return d
}

// Clone returns a deep copy sharing no slices with the original.
func (d Document) Clone() Document {
	out := d
	out.Skills = append([]string(nil), d.Skills...)
	out.WorkExperience = append([]WorkExperience(nil), d.WorkExperience...)
	for i := range out.WorkExperience {
		out.WorkExperience[i].Description = append([]string(nil), d.WorkExperience[i].Description...)
	}
	out.Education = append([]Education(nil), d.Education...)
	out.Projects = append([]Project(nil), d.Projects...)
	for i := range out.Projects {
		out.Projects[i].Technologies = append([]string(nil), d.Projects[i].Technologies...)
	}
	out.Certifications = append([]Certification(nil), d.Certifications...)
	return out.Normalize()
}

// Equal reports structural deep equality. It is the dirty check: a session is
// dirty when its current document is not Equal to the last-saved snapshot.
func (d Document) Equal(other Document) bool {
	return reflect.DeepEqual(d.Normalize(), other.Normalize())
}
