package applications

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/shared/server/respond"
)

// maxUploadBytes caps the résumé file size. Typical résumés are well under a
// megabyte even as PDFs.
const maxUploadBytes = 10 << 20

// Handler exposes the application endpoints over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the application endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

type uploadResponse struct {
	Message       string      `json:"message"`
	ResumeID      string      `json:"resume_id"`
	Application   Application `json:"application"`
	Parsed        parsedStub  `json:"parsed"`
	ExtractedText string      `json:"extractedText"`
	Summary       *string     `json:"summary,omitempty"`
}

// parsedStub keeps the response shape stable while structured skill parsing
// is not implemented.
type parsedStub struct {
	Skills []string `json:"skills"`
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "missing_file", "multipart field 'resume' is required", nil)
		return
	}
	if file.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "file_too_large", "resume file exceeds the 10MB limit", nil)
		return
	}

	f, err := file.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "could not read uploaded file", nil)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "could not read uploaded file", nil)
		return
	}

	result, err := h.svc.Upload(c.Request.Context(), Upload{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			respond.Error(c, http.StatusBadRequest, "unsupported_type",
				"only .pdf, .docx, .doc and .txt files are accepted", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "upload failed", nil)
		return
	}

	c.Set("applicationId", result.Application.ID)
	respond.JSON(c, http.StatusCreated, uploadResponse{
		Message:       "resume uploaded",
		ResumeID:      result.Application.ID,
		Application:   result.Application,
		Parsed:        parsedStub{Skills: []string{}},
		ExtractedText: result.ExtractedText,
		Summary:       result.Summary,
	})
}

func (h *Handler) get(c *gin.Context) {
	app, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "lookup failed", nil)
		return
	}
	respond.OK(c, app)
}

func (h *Handler) list(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	apps, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "list failed", nil)
		return
	}
	if apps == nil {
		apps = []Application{}
	}
	respond.OK(c, apps)
}
