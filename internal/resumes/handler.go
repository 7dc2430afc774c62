package resumes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-generator/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the resume generation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/generate_resume", h.generateResume)
}

func (h *Handler) generateResume(c *gin.Context) {
	var req GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Detail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.JobRole) == "" {
		respond.Detail(c, http.StatusBadRequest, "job_role is required")
		return
	}

	doc, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		respond.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.OK(c, doc)
}
