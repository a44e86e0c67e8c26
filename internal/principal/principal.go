package principal

import (
	"errors"

	"github.com/campusforum/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoPrincipal = errors.New("no authenticated principal in context")
	ErrNotAdmin    = errors.New("admin access required")
)

// Principal is the authenticated caller, extracted from verified JWT claims.
// Role is always populated (defaulting to user), never probed dynamically.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  models.UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// RequireAdmin returns a typed error for non-admin principals.
func RequireAdmin(p Principal) error {
	if !p.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

// FromContext extracts the Principal from the JWT token placed in Fiber
// locals by the auth middleware.
func FromContext(c *fiber.Ctx) (Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Principal{}, ErrNoPrincipal
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return Principal{}, ErrNoPrincipal
	}

	email, _ := claims["email"].(string)

	role := models.RoleUser
	if r, _ := claims["role"].(string); r == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	return Principal{ID: id, Email: email, Role: role}, nil
}
