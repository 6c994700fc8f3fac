package health_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zughayyar/fin-stack-server/internal/health"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	health.RegisterRoutes(app, health.NewHandler(&fakePinger{}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"healthy"`)
}

func TestHealthCheckDetailed(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		app := fiber.New()
		health.RegisterRoutes(app, health.NewHandler(&fakePinger{}))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("database down", func(t *testing.T) {
		app := fiber.New()
		health.RegisterRoutes(app, health.NewHandler(&fakePinger{err: errors.New("refused")}))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"database":"unhealthy"`)
	})
}
