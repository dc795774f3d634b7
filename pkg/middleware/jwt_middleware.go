package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fittrack/internal/models/db_models"
	"fittrack/pkg/utils"
)

const accountKey = "account"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*db_models.Account, error)
}

// JWTAuthMiddleware resolves the bearer token to an account or aborts with
// the uniform 401. Storage failures while resolving are reported as 500.
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondUnauthorized(c)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.RespondUnauthorized(c)
			return
		}

		account, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrDatabaseError) {
				utils.HandleServiceError(c, err)
				c.Abort()
				return
			}
			utils.RespondUnauthorized(c)
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// CurrentAccount returns the account stored by JWTAuthMiddleware.
func CurrentAccount(c *gin.Context) *db_models.Account {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil
	}
	account, _ := v.(*db_models.Account)
	return account
}

func CurrentAccountID(c *gin.Context) uuid.UUID {
	if account := CurrentAccount(c); account != nil {
		return account.ID
	}
	return uuid.Nil
}
