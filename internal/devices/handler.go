package devices

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/pagination"
)

// Handler handles HTTP requests for devices
type Handler struct {
	service *Service
}

// NewHandler creates a new device handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListDevices returns a paginated device listing. A hash query parameter
// narrows the listing to the single matching device.
// GET /api/v1/devices
// GET /api/v1/devices?hash=...
func (h *Handler) ListDevices(c *gin.Context) {
	if hash := c.Query("hash"); hash != "" {
		device, err := h.service.GetDeviceByHash(c.Request.Context(), hash)
		if err != nil {
			var appErr *common.AppError
			if errors.As(err, &appErr) {
				common.AppErrorResponse(c, appErr)
				return
			}
			common.ErrorResponse(c, http.StatusInternalServerError, "failed to fetch device")
			return
		}
		common.SuccessResponse(c, device)
		return
	}

	params := pagination.ParseParams(c)

	devices, total, err := h.service.ListDevices(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to list devices")
		return
	}

	meta := pagination.BuildMeta(params.Limit, params.Offset, total)
	common.SuccessResponseWithMeta(c, devices, meta)
}

// GetDevice returns a single device
// GET /api/v1/devices/:id
func (h *Handler) GetDevice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid device ID")
		return
	}

	device, err := h.service.GetDevice(c.Request.Context(), id)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to fetch device")
		return
	}

	common.SuccessResponse(c, device)
}

// RegisterRoutes registers device routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/devices", h.ListDevices)
		api.GET("/devices/:id", h.GetDevice)
	}
}
