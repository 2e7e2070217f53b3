// middleware/auth.go
package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func parseBearerClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid authorization header format")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the internal
// user id in locals. Everything past this point works with internal
// ids only; no handler ever sees the raw token again.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearerClaims(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "invalid token claims"})
	}

	c.Locals("userID", uint(userID))
	c.Locals("isAdmin", claims["is_admin"] == true)

	return c.Next()
}

// AdminAuthMiddleware additionally requires the admin flag.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearerClaims(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "invalid token claims"})
	}
	if claims["is_admin"] != true {
		return c.Status(403).JSON(fiber.Map{"error": "admin access required"})
	}

	c.Locals("userID", uint(userID))
	c.Locals("isAdmin", true)

	return c.Next()
}

// UserID reads the authenticated user id set by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
