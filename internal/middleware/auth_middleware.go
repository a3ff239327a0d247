package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a valid bearer token and loads the caller's
// identity into the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearerToken(c, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware loads the identity when a valid token is present
// and stays silent otherwise. Public pages use it so owners see their
// drafts while visitors stay anonymous.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearerToken(c, jwtSecret); err == nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func parseBearerToken(c *gin.Context, jwtSecret string) (jwt.MapClaims, error) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return nil, fmt.Errorf("authorization credentials required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, fmt.Errorf("invalid authorization header format")
	}
	tokenString := strings.TrimSpace(parts[1])

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, fmt.Errorf("token expired")
		}
	}

	if _, ok := claims["user_id"].(float64); !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) {
	c.Set("user_id", uint(claims["user_id"].(float64)))
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if username, ok := claims["username"].(string); ok {
		c.Set("username", username)
	}
}
