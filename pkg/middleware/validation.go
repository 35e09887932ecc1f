package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/fraudwatch/pkg/validation"
)

// ValidateJSON validates JSON request body and binds it to the provided struct
func ValidateJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return err
	}

	return validation.ValidateStruct(req)
}

// RespondWithValidationError sends a standardized validation error response
func RespondWithValidationError(c *gin.Context, err error) {
	if valErr, ok := err.(*validation.ValidationError); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": valErr.Errors,
		})
	} else {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}
}

// ValidateAndBind validates and binds request to the provided struct.
// Returns true if validation passes, false otherwise (and sends error response)
func ValidateAndBind(c *gin.Context, req interface{}) bool {
	if err := ValidateJSON(c, req); err != nil {
		RespondWithValidationError(c, err)
		return false
	}
	return true
}
