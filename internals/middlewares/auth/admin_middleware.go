package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const RoleAdmin = "admin"

// AdminOnly guards /admin routes with an HS256 bearer token carrying
// role=admin. With an empty secret the guard lets everything through.
func AdminOnly(secret string, log *zap.Logger) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		}); err != nil {
			log.Debug("admin token rejected", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}
		if err := validateTokenExpiry(claims, 30*time.Second, time.Now()); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}
		if roleOf(claims) != RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - admin role required")
		}

		c.Locals("role", RoleAdmin)
		if sub, ok := claims["sub"].(string); ok {
			c.Locals("subject", sub)
		}
		return c.Next()
	}
}
