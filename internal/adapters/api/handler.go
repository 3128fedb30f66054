package api

import (
	"net/http"
	"time"

	"github.com/csuiter/screen-time-rewards/internal/application/policy"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the bridge API.
type Handler struct {
	service *policy.Service
}

// NewHandler creates a new API handler.
func NewHandler(service *policy.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers all API routes. Anything not listed here falls
// through to NotFound, including recognized paths hit with the wrong
// method.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/policy/:policyId", h.GetPolicy)
	r.POST("/policy/:policyId/enable", h.EnablePolicy)
	r.POST("/policy/:policyId/disable", h.DisablePolicy)
	r.GET("/policies", h.ListPolicies)
	r.NoRoute(h.NotFound)
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Check if the bridge is up; the only route without auth
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}

// NotFound is the terminal route: bare OPTIONS requests the CORS layer did
// not claim still get an empty 204, everything else a uniform 404 body.
func (h *Handler) NotFound(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
