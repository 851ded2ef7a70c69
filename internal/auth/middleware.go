package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys for user data
const (
	ContextKeyUserID = "auth_user_id"
	ContextKeyEmail  = "auth_email"
	ContextKeyClaims = "auth_claims"
)

const (
	msgAuthRequired = "Authentication required"
	msgTokenExpired = "Token has expired"
	msgTokenInvalid = "Invalid token"
)

// BearerMiddleware guards routes with a signed bearer token.
type BearerMiddleware struct {
	issuer *TokenIssuer
}

func NewBearerMiddleware(issuer *TokenIssuer) *BearerMiddleware {
	return &BearerMiddleware{issuer: issuer}
}

// RequireBearer rejects requests without a valid "Authorization: Bearer <token>"
// header with 401 and stores the verified claims on the context otherwise.
func (m *BearerMiddleware) RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, msgAuthRequired)
			return
		}

		claims, err := m.issuer.Verify(token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				unauthorized(c, msgTokenExpired)
				return
			}
			unauthorized(c, msgTokenInvalid)
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Subject)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns "" on unauthenticated routes.
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// GetEmail retrieves the authenticated user's email from the context.
func GetEmail(c *gin.Context) string {
	return c.GetString(ContextKeyEmail)
}

// GetClaims returns the verified token claims, or nil.
func GetClaims(c *gin.Context) *Claims {
	if v, exists := c.Get(ContextKeyClaims); exists {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}
