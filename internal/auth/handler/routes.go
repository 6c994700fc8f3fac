package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)

	// Profile routes are owner-only: the path user id must match the
	// token subject.
	users := app.Group("/api/v1/users/:userID", h.RequireAuth, h.RequireOwner("userID"))
	users.Get("", h.GetUser)
	users.Patch("", h.UpdateUser)
	users.Put("/password", h.ChangePassword)
	users.Delete("", h.DeleteUser)
}
