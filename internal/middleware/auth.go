// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	apperrors "carmarket/internal/errors"
	"carmarket/pkg/auth"
	"carmarket/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

// Context keys for storing user data
const (
	ClaimsKey = "claims"
	UserIDKey = "userID"
)

// Auth returns a middleware that requires a valid session token. The token
// is read from the session cookie, or from an "Authorization: Bearer" header
// for non-browser clients.
func Auth(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, userID)

		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || scheme != "Bearer" {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetUserID retrieves the authenticated user's id from the context.
// Returns the zero ObjectID if not found.
func GetUserID(c *gin.Context) primitive.ObjectID {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return primitive.NilObjectID
	}
	return userID.(primitive.ObjectID)
}

// GetClaims retrieves the verified token claims from the context.
func GetClaims(c *gin.Context) *auth.Claims {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*auth.Claims)
}
