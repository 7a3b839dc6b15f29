package importer

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler accepts resume file uploads and creates seeded drafts. The
// original upload is archived in the object store when one is configured.
type Handler struct {
	Svc   *resumes.Service
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *resumes.Service, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Store: store}
}

// RegisterRoutes attaches import routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/import", h.importResume)
}

type sourceFile struct {
	StorageKey string `json:"storage_key"`
	SizeBytes  int64  `json:"size_bytes"`
	MimeType   string `json:"mime_type"`
}

type importResponse struct {
	resumes.Resume
	SourceFile *sourceFile `json:"source_file,omitempty"`
}

func (h *Handler) importResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := ExtractText(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFile) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF uploads are supported", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to extract text", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), userID, SeedDraft(fileHeader.Filename, text))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		return
	}
	metrics.IncResumeImported()

	response := importResponse{Resume: resume}
	if h.Store != nil {
		// Archive the original upload. Failure does not fail the import.
		key, size, mimeType, err := h.Store.Save(c.Request.Context(), userID, fileHeader.Filename, bytes.NewReader(data))
		if err != nil {
			telemetry.Error("importer.archive_failed", map[string]any{
				"resume_id": resume.ID,
				"error":     err.Error(),
			})
		} else {
			response.SourceFile = &sourceFile{StorageKey: key, SizeBytes: size, MimeType: mimeType}
		}
	}

	respond.JSON(c, http.StatusCreated, response)
}
