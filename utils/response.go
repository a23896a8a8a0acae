package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the JSON error envelope used by every endpoint.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
