package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONErrorCode carries a machine-readable code next to the human message,
// plus optional extra fields (e.g. the gateway payment id on post-capture
// failures so support can reconcile).
func JSONErrorCode(c *gin.Context, status int, code, message string, extra gin.H) {
	body := gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
