// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response bodies mirror what the storefront client expects: payloads are
// returned bare, errors as {"error": ...}, mutations without a payload as
// {"success": true}.

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func OKResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func UpstreamErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadGateway, message)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": errors,
	})
}
