package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ngocsang1201/blog-server/helper"
)

// RequireAuth gates identity-bound routes: it verifies the bearer token,
// resolves its subject to a user document and attaches it to the context.
func RequireAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		helper.AbortError(c, http.StatusUnauthorized, "accessDenied")
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	userID, err := helper.ParseToken(tokenString)
	if err != nil {
		helper.AbortError(c, http.StatusUnauthorized, "invalidAuthen")
		return
	}

	// the account may have been removed after the token was issued
	user, err := helper.GetUserById(userID)
	if err != nil {
		helper.AbortError(c, http.StatusNotFound, "userNotFound")
		return
	}

	c.Set("user", user)
	c.Next()
}
