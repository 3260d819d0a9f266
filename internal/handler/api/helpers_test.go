//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"table-booking/internal/domain/user"
	"table-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testUser  = user.Actor{ID: uuid.MustParse("0b7c2a8e-5d0f-4c41-9a57-3f1e8b6d2c90")}
	testAdmin = user.Actor{ID: uuid.MustParse("9e4f1c3a-7b2d-4e8f-a1c6-5d0b3e7f9a12"), IsAdmin: true}
)

// fakeAuth stands in for the JWT middleware: the bearer token names the actor.
func fakeAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	switch token {
	case userToken:
		middleware.SetActor(c, testUser, user.RoleUser)
	case adminToken:
		middleware.SetActor(c, testAdmin, user.RoleAdmin)
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}
