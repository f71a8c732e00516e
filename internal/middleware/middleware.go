package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"magazine/internal/logger"
)

// AuthMiddleware guards admin routes with a bearer JWT. On success the
// token's user_id and email claims are placed on the gin context for the
// handlers downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, "Invalid authorization header", err)
			return
		}

		secret := []byte(os.Getenv("JWT_SECRET_KEY"))
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token", err)
			return
		}

		userID, email, err := sessionClaims(token)
		if err != nil {
			abortUnauthorized(c, "Invalid token claims", err)
			return
		}

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("missing authorization token")
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", fmt.Errorf("use format: Bearer {token}")
	}
	return parts[1], nil
}

func sessionClaims(token *jwt.Token) (uint, string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("token validation failed")
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("user_id claim missing")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return 0, "", fmt.Errorf("email claim missing")
	}
	return uint(id), email, nil
}

func abortUnauthorized(c *gin.Context, message string, err error) {
	logger.Warn("auth rejected", "path", c.FullPath(), "reason", err.Error())
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}
