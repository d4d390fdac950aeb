package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/snowmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

var ErrMissingPlayer = errors.New("token does not identify a player")

// Authoriz rejects requests without a valid Bearer token and stores its claims in the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		// Extract the token part.
		token := parts[1]

		// Validate the token using the barrier service.
		claims, err := ts.Decode(token)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// PlayerID returns the user ID from the claims stored by Authoriz.
func PlayerID(c *gin.Context) (uuid.UUID, error) {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, ErrMissingPlayer
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, ErrMissingPlayer
	}
	id, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, ErrMissingPlayer
	}
	playerID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrMissingPlayer
	}
	return playerID, nil
}
