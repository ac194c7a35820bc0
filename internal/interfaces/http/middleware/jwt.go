package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexashop/backend/internal/domain/identity"
	"github.com/nexashop/backend/internal/infrastructure/auth"
	"github.com/nexashop/backend/internal/interfaces/http/dto"
)

// Context keys for authenticated request data.
const (
	ClaimsKey     = "jwt_claims"
	UserIDKey     = "jwt_user_id"
	UsernameKey   = "jwt_username"
	RoleKey       = "jwt_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds configuration for the JWT authentication middleware.
type AuthConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional. When set, revoked token IDs are rejected.
	Blacklist auth.TokenBlacklist
	Logger    *zap.Logger
}

// Authenticate validates the bearer token and stores its claims in the
// gin context. Requests without a valid access token are rejected.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractClaims(c, cfg.JWTService)
		if err != nil {
			abortUnauthorized(c, cfg.Logger, err)
			return
		}

		if cfg.Blacklist != nil && claims.ID != "" {
			revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail open: a blacklist outage should not take down the API.
				if cfg.Logger != nil {
					cfg.Logger.Error("token blacklist check failed",
						zap.String("jti", claims.ID),
						zap.Error(err))
				}
			} else if revoked {
				abortUnauthorized(c, cfg.Logger, auth.ErrTokenBlacklisted)
				return
			}
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthenticate extracts claims when a valid bearer token is present
// but lets anonymous requests through untouched.
func OptionalAuthenticate(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractClaims(c, cfg.JWTService)
		if err != nil {
			c.Next()
			return
		}

		if cfg.Blacklist != nil && claims.ID != "" {
			if revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID); err == nil && revoked {
				c.Next()
				return
			}
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated role is not admin.
// It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}
		if claims.Role != string(identity.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Admin access required"))
			return
		}
		c.Next()
	}
}

func extractClaims(c *gin.Context, jwtService *auth.JWTService) (*auth.Claims, error) {
	header := c.GetHeader(AuthHeaderKey)
	if header == "" {
		return nil, auth.ErrInvalidToken
	}
	if !strings.HasPrefix(header, BearerPrefix) {
		return nil, auth.ErrInvalidToken
	}
	tokenString := strings.TrimPrefix(header, BearerPrefix)
	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}
	return jwtService.ValidateAccessToken(tokenString)
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ClaimsKey, claims)
	c.Set(UserIDKey, claims.UserID)
	c.Set(UsernameKey, claims.Username)
	c.Set(RoleKey, claims.Role)
}

func abortUnauthorized(c *gin.Context, logger *zap.Logger, err error) {
	if logger != nil {
		logger.Warn("authentication failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path))
	}

	code := dto.ErrCodeUnauthorized
	message := "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = dto.ErrCodeTokenExpired
		message = "Token has expired"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		code = dto.ErrCodeTokenInvalid
		message = "Token has been revoked"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrTokenNotYetValid):
		code = dto.ErrCodeTokenInvalid
		message = "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// GetClaims retrieves JWT claims from the gin context, or nil when the
// request is unauthenticated.
func GetClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(ClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID retrieves the authenticated user ID, or 0 for anonymous requests.
func GetUserID(c *gin.Context) int64 {
	if value, exists := c.Get(UserIDKey); exists {
		if id, ok := value.(int64); ok {
			return id
		}
	}
	return 0
}

// IsAdmin reports whether the authenticated user has the admin role.
func IsAdmin(c *gin.Context) bool {
	if value, exists := c.Get(RoleKey); exists {
		if role, ok := value.(string); ok {
			return role == string(identity.RoleAdmin)
		}
	}
	return false
}
