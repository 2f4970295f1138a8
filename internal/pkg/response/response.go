// Package response holds the JSON envelope every API endpoint answers with:
// {"success": true, "data": ...} or {"success": false, "error": {...}}.
// The dashboard's fetch layer branches on the success flag, so handlers must
// never write a bare payload.
package response

import "github.com/gin-gonic/gin"

// Success wraps data in the success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a failure envelope with a machine-readable code (e.g.
// NOT_FOUND, VALIDATION_ERROR) and a human-readable message.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error plus a details payload, used for the per-field
// map that accompanies validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
