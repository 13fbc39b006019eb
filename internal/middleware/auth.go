package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/examportal/internal/dto"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"

	identityKey = "identity"
)

// Claims are issued by the authentication service. Subject holds the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller of a request.
type Identity struct {
	ID   uuid.UUID
	Role string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// GenerateToken signs an HS256 token for the given identity.
func GenerateToken(id Identity, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(tokenString, secret string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid {
		return Identity{}, errors.New("invalid token")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, errors.New("token subject is not a user id")
	}
	return Identity{ID: id, Role: claims.Role}, nil
}

// Authenticate resolves the caller from a Bearer token and aborts with 401 otherwise.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token provided"})
			return
		}

		identity, err := parseToken(tokenString, secret)
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("Token verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, token failed or expired"})
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireRole lets the request through only for callers with the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token provided"})
			return
		}
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Forbidden: Access restricted to " + role + "s"})
			return
		}
		c.Next()
	}
}

func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

func CurrentUser(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
