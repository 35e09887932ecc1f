package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/pagination"
)

// Handler handles HTTP requests for accounts
type Handler struct {
	service *Service
}

// NewHandler creates a new account handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListAccounts returns a paginated account listing
// GET /api/v1/accounts
func (h *Handler) ListAccounts(c *gin.Context) {
	params := pagination.ParseParams(c)

	accounts, total, err := h.service.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to list accounts")
		return
	}

	meta := pagination.BuildMeta(params.Limit, params.Offset, total)
	common.SuccessResponseWithMeta(c, accounts, meta)
}

// GetAccount returns a single account
// GET /api/v1/accounts/:id
func (h *Handler) GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid account ID")
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), id)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to fetch account")
		return
	}

	common.SuccessResponse(c, account)
}

// RegisterRoutes registers account routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/accounts", h.ListAccounts)
		api.GET("/accounts/:id", h.GetAccount)
	}
}
