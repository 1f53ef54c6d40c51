package sec

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/spf13/viper"
)

// ReadUserToken turns a bearer token issued by the authentication
// collaborator into an opaque viewer identity. Chronicle only verifies the
// signature, it never issues tokens itself.
func ReadUserToken(token string) (models.Account, error) {
	var user models.Account

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(viper.GetString("security.access_token_secret")), nil
	})
	if err != nil {
		return user, err
	}
	if !parsed.Valid {
		return user, fmt.Errorf("invalid access token")
	}

	if id, ok := claims["id"].(float64); ok {
		user.ID = uint(id)
	} else {
		return user, fmt.Errorf("access token is missing the account id")
	}
	user.Name, _ = claims["name"].(string)
	user.Nick, _ = claims["nick"].(string)

	return user, nil
}

// ContextMiddleware resolves the viewer identity out of the bearer token, if
// any. Requests without a readable token stay anonymous instead of failing,
// individual routes decide whether they require a user.
func ContextMiddleware(c *fiber.Ctx) error {
	raw := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(raw, "Bearer "); ok {
		if user, err := ReadUserToken(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "you are not authenticated")
	}

	return nil
}
