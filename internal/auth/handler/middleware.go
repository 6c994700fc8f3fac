package handler

import (
	"strings"

	"github.com/Zughayyar/fin-stack-server/internal/auth/domain"
	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys under which the verified identity is stored in the request locals.
const (
	LocalsUserID = "authUserID"
	LocalsClaims = "authClaims"
)

// RequireAuth gates protected routes. A request without a bearer token is
// rejected before the wrapped handler runs; a verified one carries the
// resolved identity in the request locals.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing credential",
		})
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid authorization header",
		})
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		// The failure class stays in the log; the client sees a uniform 401.
		h.log.Warn(c.UserContext(), "token rejected", "reason", err.Error())
		return RespondError(c, err)
	}

	c.Locals(LocalsUserID, claims.UserID)
	c.Locals(LocalsClaims, claims)

	return c.Next()
}

// RequireOwner compares the route's user id parameter against the
// verified identity. A mismatch is authenticated but not authorized, so
// it yields 403, not 401. Must run after RequireAuth.
func (h *AuthHandler) RequireOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := c.Params(param)
		if _, err := uuid.Parse(owner); err != nil {
			return RespondError(c, autherror.ErrInvalidInput)
		}

		authed, _ := c.Locals(LocalsUserID).(string)
		if authed == "" || authed != owner {
			return RespondError(c, autherror.ErrForbidden)
		}

		return c.Next()
	}
}

// AuthenticatedUser returns the identity resolved by RequireAuth.
func AuthenticatedUser(c *fiber.Ctx) (*domain.Claims, bool) {
	claims, ok := c.Locals(LocalsClaims).(*domain.Claims)
	return claims, ok
}
