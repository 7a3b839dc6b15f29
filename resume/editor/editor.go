// Package editor mutates the ordered item collections of a resume document.
// Every operation is copy-on-write: the input document is never modified, so
// callers can compare the result against a retained snapshot. Item identity
// is carried by the item id, never by position; positions are only valid for
// a single bounds-checked operation against the currently rendered list.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"resume-builder/resume/model"
)

// Collection names one of the four ordered item collections.
type Collection string

const (
	WorkExperience Collection = "work_experience"
	Education      Collection = "education"
	Projects       Collection = "projects"
	Certifications Collection = "certifications"
)

var (
	// ErrIndexOutOfRange reports an index outside [0, len). It indicates a
	// caller bug, not a user-facing condition.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownCollection reports a collection name outside the four known ones.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrUnknownField reports a field name the targeted item type does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidFieldValue reports a value whose type does not match the field.
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Append adds a new item with a freshly minted id to the end of the
// collection. Seed values are applied to the new item the same way
// UpdateField applies them; the minted id is returned. Append never fails
// for an empty seed on a known collection.
func Append(doc model.Document, col Collection, seed map[string]any) (model.Document, string, error) {
	out := doc.Clone()
	id := uuid.NewString()

	switch col {
	case WorkExperience:
		out.WorkExperience = append(out.WorkExperience, model.WorkExperience{ID: id, Description: []string{}})
	case Education:
		out.Education = append(out.Education, model.Education{ID: id})
	case Projects:
		out.Projects = append(out.Projects, model.Project{ID: id, Technologies: []string{}})
	case Certifications:
		out.Certifications = append(out.Certifications, model.Certification{ID: id})
	default:
		return doc, "", fmt.Errorf("%w: %s", ErrUnknownCollection, col)
	}

	for field, value := range seed {
		updated, err := UpdateField(out, col, length(out, col)-1, field, value)
		if err != nil {
			return doc, "", err
		}
		out = updated
	}
	return out, id, nil
}

// RemoveAt removes exactly the item at index, preserving the ids and relative
// order of every other item.
func RemoveAt(doc model.Document, col Collection, index int) (model.Document, error) {
	out := doc.Clone()
	switch col {
	case WorkExperience:
		items, err := removeAt(out.WorkExperience, index)
		if err != nil {
			return doc, err
		}
		out.WorkExperience = items
	case Education:
		items, err := removeAt(out.Education, index)
		if err != nil {
			return doc, err
		}
		out.Education = items
	case Projects:
		items, err := removeAt(out.Projects, index)
		if err != nil {
			return doc, err
		}
		out.Projects = items
	case Certifications:
		items, err := removeAt(out.Certifications, index)
		if err != nil {
			return doc, err
		}
		out.Certifications = items
	default:
		return doc, fmt.Errorf("%w: %s", ErrUnknownCollection, col)
	}
	return out, nil
}

// UpdateField replaces one field on the item at index without touching
// sibling fields, other items, or the item's id.
func UpdateField(doc model.Document, col Collection, index int, field string, value any) (model.Document, error) {
	out := doc.Clone()
	if !known(col) {
		return doc, fmt.Errorf("%w: %s", ErrUnknownCollection, col)
	}
	if index < 0 || index >= length(out, col) {
		return doc, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, col, index)
	}

	var err error
	switch col {
	case WorkExperience:
		err = setExperienceField(&out.WorkExperience[index], field, value)
	case Education:
		err = setEducationField(&out.Education[index], field, value)
	case Projects:
		err = setProjectField(&out.Projects[index], field, value)
	case Certifications:
		err = setCertificationField(&out.Certifications[index], field, value)
	}
	if err != nil {
		return doc, err
	}
	return out, nil
}

func known(col Collection) bool {
	switch col {
	case WorkExperience, Education, Projects, Certifications:
		return true
	default:
		return false
	}
}

func length(doc model.Document, col Collection) int {
	switch col {
	case WorkExperience:
		return len(doc.WorkExperience)
	case Education:
		return len(doc.Education)
	case Projects:
		return len(doc.Projects)
	case Certifications:
		return len(doc.Certifications)
	default:
		return 0
	}
}

func removeAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(items))
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, nil
}

func setExperienceField(item *model.WorkExperience, field string, value any) error {
	switch field {
	case "company":
		return setString(&item.Company, field, value)
	case "position":
		return setString(&item.Position, field, value)
	case "location":
		return setString(&item.Location, field, value)
	case "start_date":
		return setString(&item.StartDate, field, value)
	case "end_date":
		return setString(&item.EndDate, field, value)
	case "current":
		return setBool(&item.Current, field, value)
	case "description":
		return setStrings(&item.Description, field, value)
	default:
		return fmt.Errorf("%w: work_experience.%s", ErrUnknownField, field)
	}
}

func setEducationField(item *model.Education, field string, value any) error {
	switch field {
	case "institution":
		return setString(&item.Institution, field, value)
	case "degree":
		return setString(&item.Degree, field, value)
	case "field":
		return setString(&item.Field, field, value)
	case "location":
		return setString(&item.Location, field, value)
	case "start_date":
		return setString(&item.StartDate, field, value)
	case "end_date":
		return setString(&item.EndDate, field, value)
	case "gpa":
		return setString(&item.GPA, field, value)
	default:
		return fmt.Errorf("%w: education.%s", ErrUnknownField, field)
	}
}

func setProjectField(item *model.Project, field string, value any) error {
	switch field {
	case "name":
		return setString(&item.Name, field, value)
	case "description":
		return setString(&item.Description, field, value)
	case "technologies":
		return setStrings(&item.Technologies, field, value)
	case "link":
		return setString(&item.Link, field, value)
	default:
		return fmt.Errorf("%w: projects.%s", ErrUnknownField, field)
	}
}

func setCertificationField(item *model.Certification, field string, value any) error {
	switch field {
	case "name":
		return setString(&item.Name, field, value)
	case "issuer":
		return setString(&item.Issuer, field, value)
	case "date":
		return setString(&item.Date, field, value)
	case "credential_id":
		return setString(&item.CredentialID, field, value)
	default:
		return fmt.Errorf("%w: certifications.%s", ErrUnknownField, field)
	}
}

func setString(dst *string, field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects a string", ErrInvalidFieldValue, field)
	}
	*dst = s
	return nil
}

func setBool(dst *bool, field string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: %s expects a bool", ErrInvalidFieldValue, field)
	}
	*dst = b
	return nil
}

func setStrings(dst *[]string, field string, value any) error {
	switch v := value.(type) {
	case []string:
		*dst = append([]string(nil), v...)
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("%w: %s expects strings", ErrInvalidFieldValue, field)
			}
			out = append(out, s)
		}
		*dst = out
		return nil
	default:
		return fmt.Errorf("%w: %s expects a string list", ErrInvalidFieldValue, field)
	}
}
