package analytics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/fraudwatch/pkg/common"
)

// Handler handles HTTP requests for dashboard analytics
type Handler struct {
	service *Service
}

// NewHandler creates a new analytics handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func respond(c *gin.Context, data interface{}, err error, fallback string) {
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, fallback)
		return
	}
	common.SuccessResponse(c, data)
}

// Search performs a global hash search across devices and accounts
// GET /api/v1/search
func (h *Handler) Search(c *gin.Context) {
	results, err := h.service.Search(c.Request.Context(), c.Query("q"))
	respond(c, gin.H{"results": results}, err, "search failed")
}

// GetDistribution returns OS/browser device counts
// GET /api/v1/stats/distribution
func (h *Handler) GetDistribution(c *gin.Context) {
	dist, err := h.service.GetDistribution(c.Request.Context())
	respond(c, dist, err, "failed to fetch distribution")
}

// GetAlerts returns recent high-risk devices as alerts
// GET /api/v1/alerts
func (h *Handler) GetAlerts(c *gin.Context) {
	alerts, err := h.service.GetAlerts(c.Request.Context())
	respond(c, alerts, err, "failed to fetch alerts")
}

// RegisterRoutes registers analytics routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/search", h.Search)
		api.GET("/stats/distribution", h.GetDistribution)
		api.GET("/alerts", h.GetAlerts)
	}
}
