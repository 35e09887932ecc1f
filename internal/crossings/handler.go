package crossings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/common"
)

const maxGraphLimit = 500

// Handler handles HTTP requests for the relationship graph
type Handler struct {
	service *Service
}

// NewHandler creates a new crossing handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetGraphData returns the device-account graph over recent crossings
// GET /api/v1/graph-data
func (h *Handler) GetGraphData(c *gin.Context) {
	limit := DefaultGraphLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			common.ErrorResponse(c, http.StatusBadRequest, "invalid limit")
			return
		}
		if parsed > maxGraphLimit {
			parsed = maxGraphLimit
		}
		limit = parsed
	}

	g, err := h.service.GetGraph(c.Request.Context(), limit)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to build graph")
		return
	}

	common.SuccessResponse(c, g)
}

// ListForDevice returns the crossings recorded for one device
// GET /api/v1/devices/:id/crossings
func (h *Handler) ListForDevice(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid device ID")
		return
	}

	list, err := h.service.ListForDevice(c.Request.Context(), deviceID)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to fetch crossings")
		return
	}

	common.SuccessResponse(c, list)
}

// RegisterRoutes registers graph routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/graph-data", h.GetGraphData)
		api.GET("/devices/:id/crossings", h.ListForDevice)
	}
}
