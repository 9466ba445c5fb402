package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secretKey string

func SetSecretKey(key string) {
	secretKey = key
}

func GetSecretKey() string {
	return secretKey
}

// AdminRoleID is the role that passes RequireAdmin.
const AdminRoleID = 1

func parseToken(authHeader string) (jwt.MapClaims, bool) {
	parts := strings.Split(strings.TrimSpace(authHeader), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, false
		}
	}

	return claims, true
}

func setIdentity(ctx *gin.Context, claims jwt.MapClaims) {
	if id, ok := claims["user_id"].(float64); ok {
		ctx.Set("userId", int(id))
	}
	if role, ok := claims["role_id"].(float64); ok {
		ctx.Set("roleId", int(role))
	}
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's user and role ids in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			ctx.Abort()
			return
		}

		claims, ok := parseToken(authHeader)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		setIdentity(ctx, claims)
		ctx.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present but lets
// anonymous visitors through untouched.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, ok := parseToken(ctx.GetHeader("Authorization")); ok {
			setIdentity(ctx, claims)
		}
		ctx.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetInt("roleId") != AdminRoleID {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Admins only"})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// UserID returns the authenticated caller's id, zero for anonymous.
func UserID(ctx *gin.Context) int {
	return ctx.GetInt("userId")
}

// RoleID returns the authenticated caller's role id, zero for anonymous.
func RoleID(ctx *gin.Context) int {
	return ctx.GetInt("roleId")
}
