package handler

import (
	"github.com/castrillo/cafepos-api/internal/application/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserName extracts the user display name from the Gin context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("user_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// GetCashier resolves the authenticated session into a cashier identity.
// Returns nil when the auth middleware did not run.
func GetCashier(c *gin.Context) *service.Cashier {
	userID := GetUserID(c)
	if userID == nil {
		return nil
	}
	return &service.Cashier{
		ID:   *userID,
		Name: GetUserName(c),
	}
}
