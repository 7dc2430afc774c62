package respond

import (
	"github.com/gin-gonic/gin"

	"resume-generator/internal/shared/telemetry"
)

// DetailBody is the error object returned on every failed request.
type DetailBody struct {
	Detail string `json:"detail"`
}

// Detail sends an error response carrying a free-text detail string.
func Detail(c *gin.Context, status int, detail string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"detail":     detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, DetailBody{Detail: detail})
}
