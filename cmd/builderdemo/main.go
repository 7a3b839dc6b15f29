package main

// Drives a full editing session against the in-memory service and writes
// the rendered DOCX next to the model JSON:
//   go run ./cmd/builderdemo -out ./out/sample_resume.docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/builder"
	"resume-builder/internal/resumes"
	"resume-builder/resume/editor"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/session"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.docx", "output path for generated DOCX")
	flag.Parse()

	ctx := context.Background()
	svc := &resumes.Service{Repo: resumes.NewMemoryRepo()}
	sess := builder.NewSession(svc, "demo-user")

	if err := buildSampleResume(sess); err != nil {
		fmt.Fprintf(os.Stderr, "edit failed: %v\n", err)
		os.Exit(1)
	}

	saved, err := sess.Save(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("saved resume %s (state %s)\n", saved.ID, sess.State())

	if feedback, ok := sess.Feedback(); ok {
		fmt.Printf("screening score: %d\n", feedback.Score)
		for _, suggestion := range feedback.Suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}

	docxBytes, err := render.RenderResume(sess.Document())
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutputs(*outPath, sess.Document(), docxBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedDocx(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func buildSampleResume(sess *session.Session) error {
	return sess.Edit(func(doc model.Document) (model.Document, error) {
		doc.Title = "Senior Backend Engineer"
		doc.PersonalInfo = model.PersonalInfo{
			FullName:  "Jordan Lee",
			Email:     "jordan.lee@example.com",
			Phone:     "+1-555-0102",
			Location:  "Austin, TX",
			LinkedIn:  "https://www.linkedin.com/in/jordanlee",
			Portfolio: "https://github.com/jordanlee",
		}
		doc.ProfessionalSummary = "Backend engineer with 8+ years of experience building resilient APIs and data services."
		doc.Skills = []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "AWS", "Redis"}

		doc, _, err := editor.Append(doc, editor.WorkExperience, map[string]any{
			"company":  "Acme Logistics",
			"position": "Senior Backend Engineer",
			"location": "Austin, TX",
			"start_date": "2021-04",
			"current":    true,
			"description": []string{
				"Designed a routing service that reduced shipment latency by 18%.",
				"Implemented distributed tracing to cut incident triage time by 35%.",
			},
		})
		if err != nil {
			return doc, err
		}

		doc, _, err = editor.Append(doc, editor.Education, map[string]any{
			"institution": "University of Washington",
			"degree":      "BS",
			"field":       "Computer Science",
			"end_date":    "2017-06",
		})
		return doc, err
	})
}

func writeOutputs(outPath string, doc model.Document, docxBytes []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, docxBytes, 0o644); err != nil {
		return err
	}

	modelPath := filepath.Join(dir, "sample_resume_model.json")
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(modelPath, payload, 0o644)
}

func validateRenderedDocx(path string) error {
	docxBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		if normalizeZipName(file.Name) != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if !strings.Contains(string(content), "Jordan Lee") {
			return fmt.Errorf("document.xml missing resume content")
		}
		return nil
	}

	return fmt.Errorf("document.xml not found in docx")
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
