// Package export serves rendered resume artifacts for download.
package export

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
)

// Renderer turns a document into an opaque download artifact.
type Renderer func(doc model.Document) ([]byte, error)

// Handler streams rendered resumes.
type Handler struct {
	Svc    *resumes.Service
	Render Renderer
}

// NewHandler constructs a Handler.
func NewHandler(svc *resumes.Service, render Renderer) *Handler {
	return &Handler{Svc: svc, Render: render}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/export", h.export)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return
	}

	start := metrics.NowMillis()
	artifact, err := h.Render(resume.Document)
	metrics.ObserveExportDurationMs(metrics.NowMillis() - start)
	if err != nil {
		metrics.IncExportFailed()
		respond.Error(c, http.StatusInternalServerError, "render_error", "failed to render resume", nil)
		return
	}
	metrics.IncExportRendered()

	filename := downloadFilename(resume.Title)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", artifact)
}

func downloadFilename(title string) string {
	name := strings.Join(strings.Fields(strings.TrimSpace(title)), "_")
	if name == "" {
		name = "resume"
	}
	return name + ".docx"
}
