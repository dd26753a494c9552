package generate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/shared/server/respond"
)

// Handler exposes the generation capabilities over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the generation endpoints under the applications
// group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate/resume", h.optimize)
	rg.POST("/generate/new-resume", h.newResume)
	rg.POST("/generate/cover-letter", h.coverLetter)
	rg.POST("/generate/interview", h.interview)
}

// RegisterAIRoutes mounts the standalone summary endpoint under /api/ai.
func (h *Handler) RegisterAIRoutes(rg *gin.RouterGroup) {
	rg.POST("/summary", h.summary)
}

type generateRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	ResumeID       string `json:"resume_id"`
}

func bindRequest(c *gin.Context) (generateRequest, bool) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "request body must be valid JSON", nil)
		return req, false
	}
	req.ResumeText = strings.TrimSpace(req.ResumeText)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	return req, true
}

func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidInput) {
		respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		return
	}
	if errors.Is(err, llm.ErrUnavailable) {
		respond.Error(c, http.StatusBadGateway, "upstream_unavailable", "generation provider is unavailable", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "generation failed", nil)
}

func (h *Handler) optimize(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	result, err := h.svc.Optimize(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) newResume(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	result, err := h.svc.NewResume(c.Request.Context(), req.ResumeText)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) coverLetter(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	result, err := h.svc.CoverLetter(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) interview(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	result, err := h.svc.Interview(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) summary(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	result, err := h.svc.Summary(c.Request.Context(), req.ResumeText)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond.OK(c, result)
}
