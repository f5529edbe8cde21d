package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error payload used by every controller.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
