package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/models"
)

const identityKey = "admin_identity"

// tokenTTL is fixed; there is no refresh mechanism, expiry forces re-authentication
const tokenTTL = time.Hour

// AdminClaims is the claim set carried by every issued token
type AdminClaims struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
	jwt.RegisteredClaims
}

// Identity is the verified caller attached to the request context
type Identity struct {
	ID       uuid.UUID
	Role     string
	IsActive bool
}

// TokenManager signs and verifies admin bearer tokens
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a token manager for the given signing secret
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret cannot be empty")
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("token signing secret must be at least 32 characters long")
	}
	return &TokenManager{secret: []byte(secret)}, nil
}

// Generate issues a signed, time-boxed token for the admin
func (tm *TokenManager) Generate(admin *models.Admin) (string, error) {
	claims := AdminClaims{
		ID:       admin.ID.String(),
		Role:     admin.Role,
		IsActive: admin.IsActive,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "market-admin-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse verifies a token's signature and expiry and returns its claims
func (tm *TokenManager) Parse(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// Auth extracts and verifies the bearer token and attaches the caller
// identity to the request context
func Auth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"msg":     "Access denied. Token missing.",
				"variant": "error",
				"payload": nil,
			})
			c.Abort()
			return
		}

		claims, err := tm.Parse(token)
		if err != nil || !claims.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{
				"msg":     "Invalid or expired token.",
				"variant": "error",
				"payload": nil,
			})
			c.Abort()
			return
		}

		id, err := uuid.Parse(claims.ID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"msg":     "Invalid or expired token.",
				"variant": "error",
				"payload": nil,
			})
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{ID: id, Role: claims.Role, IsActive: claims.IsActive})
		c.Next()
	}
}

// RequireOwner requires the caller to hold the superadmin role. It fails
// closed with 401 when no identity was attached.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"msg":     "Access denied. Token missing.",
				"variant": "error",
				"payload": nil,
			})
			c.Abort()
			return
		}

		if identity.Role != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"msg":     "Access denied. Owner privileges required.",
				"variant": "error",
				"payload": nil,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity retrieves the caller identity attached by Auth
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
