// Package render produces the exported document artifact for a resume. The
// output is a minimal WordprocessingML package built in memory; callers
// treat the bytes as opaque.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/view"
)

// MimeType is the content type of the rendered artifact.
const MimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// RenderResume renders a resume document into a DOCX byte slice.
func RenderResume(doc model.Document) ([]byte, error) {
	doc = doc.Normalize()
	if strings.TrimSpace(doc.Title) == "" && strings.TrimSpace(doc.PersonalInfo.FullName) == "" {
		return nil, errors.New("nothing to render: title and name are both empty")
	}

	documentXML := buildDocumentXML(doc, styleFor(doc.TemplateID))

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		f, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func buildDocumentXML(doc model.Document, style TemplateStyle) string {
	var b xmlBuilder

	name := doc.PersonalInfo.FullName
	if name == "" {
		name = doc.Title
	}
	b.heading(name, style.NameSize, style.NameColor)

	contact := contactLine(doc.PersonalInfo)
	if contact != "" {
		b.paragraph(contact)
	}

	if strings.TrimSpace(doc.ProfessionalSummary) != "" {
		b.heading("Summary", style.HeadingSize, style.AccentColor)
		b.paragraph(doc.ProfessionalSummary)
	}

	if len(doc.Skills) > 0 {
		b.heading("Skills", style.HeadingSize, style.AccentColor)
		b.paragraph(view.RenderSkills(doc.Skills))
	}

	if len(doc.WorkExperience) > 0 {
		b.heading("Experience", style.HeadingSize, style.AccentColor)
		for _, exp := range doc.WorkExperience {
			b.boldParagraph(joinNonEmpty(" — ", exp.Position, exp.Company))
			b.paragraph(joinNonEmpty(" | ", exp.Location, dateRange(exp.StartDate, view.DisplayEndDate(exp))))
			for _, bullet := range exp.Description {
				b.bullet(bullet)
			}
		}
	}

	if len(doc.Education) > 0 {
		b.heading("Education", style.HeadingSize, style.AccentColor)
		for _, edu := range doc.Education {
			b.boldParagraph(joinNonEmpty(" — ", joinNonEmpty(" in ", edu.Degree, edu.Field), edu.Institution))
			line := joinNonEmpty(" | ", edu.Location, dateRange(edu.StartDate, edu.EndDate))
			if edu.GPA != "" {
				line = joinNonEmpty(" | ", line, "GPA: "+edu.GPA)
			}
			b.paragraph(line)
		}
	}

	if len(doc.Projects) > 0 {
		b.heading("Projects", style.HeadingSize, style.AccentColor)
		for _, project := range doc.Projects {
			b.boldParagraph(project.Name)
			b.paragraph(project.Description)
			if len(project.Technologies) > 0 {
				b.paragraph("Technologies: " + strings.Join(project.Technologies, ", "))
			}
			if project.Link != "" {
				b.paragraph(project.Link)
			}
		}
	}

	if len(doc.Certifications) > 0 {
		b.heading("Certifications", style.HeadingSize, style.AccentColor)
		for _, cert := range doc.Certifications {
			line := joinNonEmpty(" — ", cert.Name, cert.Issuer)
			line = joinNonEmpty(", ", line, cert.Date)
			if cert.CredentialID != "" {
				line = joinNonEmpty(" ", line, "("+cert.CredentialID+")")
			}
			b.paragraph(line)
		}
	}

	return documentHeader + b.String() + documentFooter
}

func contactLine(info model.PersonalInfo) string {
	return joinNonEmpty(" | ", info.Email, info.Phone, info.Location, info.LinkedIn, info.Portfolio)
}

func dateRange(start, end string) string {
	return joinNonEmpty(" - ", start, end)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, sep)
}

// xmlBuilder accumulates WordprocessingML paragraphs.
type xmlBuilder struct {
	b strings.Builder
}

func (x *xmlBuilder) String() string { return x.b.String() }

func (x *xmlBuilder) heading(text string, size int, color string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	fmt.Fprintf(&x.b,
		`<w:p><w:r><w:rPr><w:b/><w:sz w:val="%d"/><w:color w:val="%s"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		size, color, escape(text))
}

func (x *xmlBuilder) paragraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	fmt.Fprintf(&x.b,
		`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text))
}

func (x *xmlBuilder) boldParagraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	fmt.Fprintf(&x.b,
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text))
}

func (x *xmlBuilder) bullet(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	x.paragraph("• " + text)
}

func escape(text string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(text))
	return buf.String()
}

const (
	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentFooter = `</w:body></w:document>`

	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`
)
