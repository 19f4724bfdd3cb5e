package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/middleware"
)

// userID returns the id the auth middleware put on the context.
func userID(c *gin.Context) (string, error) {
	uid := c.GetString(middleware.UserIDKey)
	if uid == "" {
		return "", domain.ErrUnauthenticated
	}
	return uid, nil
}
