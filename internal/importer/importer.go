// Package importer seeds new drafts from uploaded resume files.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-builder/resume/model"
)

const mimePDF = "application/pdf"

// ErrUnsupportedFile reports an upload that is not a readable PDF.
var ErrUnsupportedFile = errors.New("unsupported file type")

// ExtractText pulls plain text from an uploaded resume file. Only PDF is
// supported; anything else is rejected rather than guessed at.
func ExtractText(data []byte, mimeType, fileName string) (string, error) {
	if normalizeMimeType(mimeType, fileName, data) != mimePDF {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, mimeType)
	}
	return extractPDF(data)
}

// SeedDraft builds a structurally complete draft from extracted resume text.
// The text lands in the professional summary for the user to redistribute;
// parsing it into structured sections is not attempted.
func SeedDraft(fileName, text string) model.Document {
	doc := model.New()
	doc.Title = titleFromFileName(fileName)
	doc.ProfessionalSummary = strings.TrimSpace(text)
	return doc
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func normalizeMimeType(mimeType, fileName string, data []byte) string {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(normalized, ";"); idx >= 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	if normalized == mimePDF {
		return mimePDF
	}
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return mimePDF
	}
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return mimePDF
	}
	return normalized
}

func titleFromFileName(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.TrimSpace(strings.ReplaceAll(base, "_", " "))
	if base == "" || base == "." {
		return "Imported Resume"
	}
	return base
}
