// Package templates serves the resume template catalog.
package templates

// Template describes one catalog entry.
type Template struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experience_level"`
	PreviewImage    string `json:"preview_image"`
}

// DefaultTemplateID is applied to documents saved without a template.
const DefaultTemplateID = "ats-tech"

var catalog = []Template{
	{
		ID:              "ats-tech",
		Name:            "ATS-Friendly Tech",
		Description:     "Clean, professional format optimized for Applicant Tracking Systems. Perfect for tech roles.",
		Industry:        "tech",
		ExperienceLevel: "all",
		PreviewImage:    "https://images.pexels.com/photos/7793999/pexels-photo-7793999.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		ID:              "business-pro",
		Name:            "Business Professional",
		Description:     "Traditional format with a modern touch. Ideal for business and management roles.",
		Industry:        "business",
		ExperienceLevel: "mid-senior",
		PreviewImage:    "https://images.pexels.com/photos/8528405/pexels-photo-8528405.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		ID:              "creative-bold",
		Name:            "Creative Bold",
		Description:     "Eye-catching design for creative professionals. Stand out while staying ATS-friendly.",
		Industry:        "creative",
		ExperienceLevel: "all",
		PreviewImage:    "https://images.pexels.com/photos/5668858/pexels-photo-5668858.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
}

// All returns the catalog in its fixed order.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Known reports whether a template id exists in the catalog.
func Known(id string) bool {
	for _, tpl := range catalog {
		if tpl.ID == id {
			return true
		}
	}
	return false
}
