package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zughayyar/fin-stack-server/internal/auth/handler"
	"github.com/Zughayyar/fin-stack-server/internal/auth/service"
	"github.com/Zughayyar/fin-stack-server/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The middleware tests use a real token service: the interesting behavior
// is the interplay between verification outcomes and HTTP statuses.
func newProtectedApp(t *testing.T, tokens *service.TokenService) *fiber.App {
	t.Helper()

	authHandler := handler.NewAuthHandler(nil, tokens, logging.New("test"))

	app := fiber.New()
	app.Get("/users/:userID/resource", authHandler.RequireAuth, authHandler.RequireOwner("userID"),
		func(c *fiber.Ctx) error {
			claims, ok := handler.AuthenticatedUser(c)
			require.True(t, ok)
			return c.JSON(fiber.Map{"owner": claims.UserID})
		})

	return app
}

func get(t *testing.T, app *fiber.App, path, bearer string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 60)
	userID := uuid.New().String()
	app := newProtectedApp(t, tokens)

	token, _, err := tokens.Generate(userID, "john@example.com")
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/users/"+userID+"/resource", ""))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/"+userID+"/resource", nil)
		req.Header.Set("Authorization", "Basic am9objpzZWNyZXQ=")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token for owner", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, get(t, app, "/users/"+userID+"/resource", token))
	})

	t.Run("expired token", func(t *testing.T) {
		expired := service.NewTokenService("test-secret", -1)
		stale, _, err := expired.Generate(userID, "john@example.com")
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/users/"+userID+"/resource", stale))
	})

	t.Run("tampered token", func(t *testing.T) {
		last := token[len(token)-1]
		flipped := byte('A')
		if last == 'A' {
			flipped = 'B'
		}
		tampered := token[:len(token)-1] + string(flipped)

		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/users/"+userID+"/resource", tampered))
	})
}

func TestRequireOwner(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 60)
	app := newProtectedApp(t, tokens)

	userA := uuid.New().String()
	userB := uuid.New().String()

	tokenA, _, err := tokens.Generate(userA, "a@x.com")
	require.NoError(t, err)

	t.Run("authenticated as A, accessing B's resource", func(t *testing.T) {
		// Valid credential, wrong owner: forbidden, never the data.
		assert.Equal(t, fiber.StatusForbidden, get(t, app, "/users/"+userB+"/resource", tokenA))
	})

	t.Run("authenticated as A, accessing own resource", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, get(t, app, "/users/"+userA+"/resource", tokenA))
	})

	t.Run("non-uuid owner segment", func(t *testing.T) {
		assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/users/not-a-uuid/resource", tokenA))
	})
}
