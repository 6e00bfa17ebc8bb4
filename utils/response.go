package utils

import "github.com/gin-gonic/gin"

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func JSONOK(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true})
}
