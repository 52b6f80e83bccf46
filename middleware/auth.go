package middleware

import (
	"os"
	"sync"

	"Eventy/Models"
	"Eventy/Workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var (
	secretOnce sync.Once
	secretKey  []byte
)

// SecretKey returns the key used to sign and verify session tokens. The env
// var is read at first use, after main has loaded .env, not at package init.
func SecretKey() []byte {
	secretOnce.Do(func() {
		if secret := os.Getenv("JWT_SECRET"); secret != "" {
			secretKey = []byte(secret)
			return
		}
		secretKey = []byte("eventy-dev-secret")
	})
	return secretKey
}

// Verify checks the session cookie, loads the authenticated user and stores
// it in the request context for the handlers.
func Verify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies("jwt")
		if cookie == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not Logged In.",
			})
		}

		token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return SecretKey(), nil
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token claims",
			})
		}

		var user Models.User
		result := Models.DB.Where("id = ?", claims.Issuer).First(&user)
		if result.Error != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not found",
			})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireRole gates a route to the given roles. Verify must run first so the
// user is already in the context.
func RequireRole(roles ...Workflow.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(Models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not Logged In.",
			})
		}

		for _, role := range roles {
			if user.Role == string(role) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You do not have permission to access this resource",
		})
	}
}
