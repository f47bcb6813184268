// File: /middleware/auth.go
package middleware

import (
	"errors"
	"strings"

	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware accepts "Authorization: Bearer <jwt>" signed with secret
// (HS256) and stores the user_id and email claims in the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expired"
			}
			abortUnauthorized(c, msg)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			abortUnauthorized(c, "Invalid token")
			return
		}
		email, _ := claims["email"].(string)

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	utils.SendAppError(c, utils.ErrUnauthorized.WithMessage("%s", message))
	c.Abort()
}
