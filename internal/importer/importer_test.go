package importer

import (
	"errors"
	"testing"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		fileName string
		data     []byte
	}{
		{"docx mime", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx", []byte("PK")},
		{"plain text", "text/plain", "resume.txt", []byte("hello")},
		{"no hints", "", "resume", []byte("hello")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractText(tc.data, tc.mimeType, tc.fileName)
			if !errors.Is(err, ErrUnsupportedFile) {
				t.Fatalf("expected ErrUnsupportedFile, got %v", err)
			}
		})
	}
}

func TestExtractTextRejectsCorruptPDF(t *testing.T) {
	// Claims to be a pdf but the body is garbage.
	_, err := ExtractText([]byte("%PDF-not really"), "application/pdf", "resume.pdf")
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		fileName string
		data     []byte
		want     string
	}{
		{"exact mime", "application/pdf", "x.bin", nil, "application/pdf"},
		{"mime with charset", "application/pdf; charset=binary", "x.bin", nil, "application/pdf"},
		{"extension fallback", "application/octet-stream", "Resume.PDF", nil, "application/pdf"},
		{"magic bytes fallback", "", "upload", []byte("%PDF-1.7"), "application/pdf"},
		{"unrelated", "text/plain", "notes.txt", []byte("hi"), "text/plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeMimeType(tc.mimeType, tc.fileName, tc.data)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSeedDraft(t *testing.T) {
	doc := SeedDraft("jordan_lee_resume.pdf", "  Backend engineer, 8 years.  ")

	if doc.Title != "jordan lee resume" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if doc.ProfessionalSummary != "Backend engineer, 8 years." {
		t.Fatalf("unexpected summary %q", doc.ProfessionalSummary)
	}
	if doc.Skills == nil || doc.WorkExperience == nil {
		t.Fatal("expected a structurally complete draft")
	}
}

func TestSeedDraftEmptyFileName(t *testing.T) {
	doc := SeedDraft("", "text")
	if doc.Title != "Imported Resume" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
}
