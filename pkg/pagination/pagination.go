package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is the page size applied when the client sends none
	DefaultLimit = 20
	// MaxLimit caps the page size a client can request
	MaxLimit = 100
	// DefaultOffset is the offset applied when the client sends none
	DefaultOffset = 0
)

// Params holds parsed pagination parameters
type Params struct {
	Limit  int
	Offset int
}

// Meta carries pagination metadata for list responses
type Meta struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ParseParams extracts limit/offset query parameters, applying defaults and
// clamping the limit to MaxLimit. Invalid values fall back to defaults.
func ParseParams(c *gin.Context) Params {
	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			limit = value
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}

	offset := DefaultOffset
	if raw := c.Query("offset"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			offset = value
		}
	}

	return Params{Limit: limit, Offset: offset}
}

// BuildMeta builds pagination metadata from the request parameters and the
// total row count
func BuildMeta(limit, offset int, total int64) *Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return &Meta{
		Limit:      limit,
		Offset:     offset,
		Total:      total,
		TotalPages: totalPages,
	}
}

// HasMore reports whether more rows exist past the current page
func HasMore(offset, limit int, total int64) bool {
	return int64(offset+limit) < total
}

// GetCurrentPage converts an offset/limit pair to a 1-based page number
func GetCurrentPage(offset, limit int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}
