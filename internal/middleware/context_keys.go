package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// orgIDKey and staffIDKey hold the organization / staff identity of the token,
// when present.
const (
	orgIDKey   = contextKey("orgID")
	staffIDKey = contextKey("staffID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromRequestContext(c, userIDKey)
}

// GetOrgIDFromContext retrieves the acting organization ID from the Gin context.
func GetOrgIDFromContext(c *gin.Context) (string, bool) {
	return stringFromRequestContext(c, orgIDKey)
}

// GetStaffIDFromContext retrieves the acting staff ID from the Gin context.
func GetStaffIDFromContext(c *gin.Context) (string, bool) {
	return stringFromRequestContext(c, staffIDKey)
}

func stringFromRequestContext(c *gin.Context, key contextKey) (string, bool) {
	val := c.Request.Context().Value(key)
	if val == nil {
		return "", false
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
