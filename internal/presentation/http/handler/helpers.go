package handler

import "github.com/gin-gonic/gin"

// GetUserID extracts the authenticated user id from the Gin context
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserName extracts the authenticated display name from the Gin context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("user_name")
	if !exists {
		return ""
	}
	n, ok := name.(string)
	if !ok {
		return ""
	}
	return n
}
