package middleware

import (
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const currentUserKey = "currentUser"

// RequireAuth verifies the bearer token and resolves it to a live user
// record before the handler runs. Missing header, bad signature, expiry
// and deleted accounts all abort with the same generic 401 body, so the
// response cannot be used to probe which accounts exist.
func RequireAuth(tokens *auth.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, tokenStr, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenStr == "" {
			reject(c)
			return
		}

		userIDHex, err := tokens.Verify(tokenStr)
		if err != nil {
			reject(c)
			return
		}

		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			reject(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			reject(c)
			return
		}

		// The hash never travels past this point.
		user.Password = ""

		ctx := logger.WithUserID(c.Request.Context(), userIDHex)
		c.Request = c.Request.WithContext(ctx)
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func reject(c *gin.Context) {
	err := apperrors.ErrUnauthorized
	c.Abort()
	apperrors.HandleError(c, err)
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
