package risk

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/middleware"
)

// CalculateRiskRequest asks for a risk recalculation of one device
type CalculateRiskRequest struct {
	DeviceID string `json:"device_id" validate:"required,uuid"`
}

// CompareRequest asks for a fingerprint comparison of two devices
type CompareRequest struct {
	DeviceA string `json:"device_a" validate:"required,uuid"`
	DeviceB string `json:"device_b" validate:"required,uuid"`
}

// Handler handles HTTP requests for risk scoring
type Handler struct {
	service *Service
}

// NewHandler creates a new risk handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CalculateRisk rescores a device and returns the updated result
// POST /api/v1/calculate-risk
func (h *Handler) CalculateRisk(c *gin.Context) {
	var req CalculateRiskRequest
	if !middleware.ValidateAndBind(c, &req) {
		return
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid device ID")
		return
	}

	result, err := h.service.CalculateRisk(c.Request.Context(), deviceID)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to calculate risk")
		return
	}

	common.SuccessResponse(c, result)
}

// CompareDevices returns the similarity verdict for two devices
// POST /api/v1/compare
func (h *Handler) CompareDevices(c *gin.Context) {
	var req CompareRequest
	if !middleware.ValidateAndBind(c, &req) {
		return
	}

	idA, err := uuid.Parse(req.DeviceA)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid device ID")
		return
	}
	idB, err := uuid.Parse(req.DeviceB)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid device ID")
		return
	}

	result, err := h.service.CompareDevices(c.Request.Context(), idA, idB)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to compare devices")
		return
	}

	common.SuccessResponse(c, result)
}

// GetRules returns the static scoring rule table
// GET /api/v1/rules
func (h *Handler) GetRules(c *gin.Context) {
	common.SuccessResponse(c, h.service.Rules())
}

// RegisterRoutes registers risk routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/calculate-risk", h.CalculateRisk)
		api.POST("/compare", h.CompareDevices)
		api.GET("/rules", h.GetRules)
	}
}
