package httpx

import (
	"github.com/gofiber/fiber/v2"

	"digitflow/internal/httpx/kit"
)

// HealthHandler reports service liveness.
//
//	@Summary		Health check
//	@Description	Check the health of the API service
//	@Tags			health
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]string	"healthy"
//	@Router			/health [get]
func HealthHandler(c *fiber.Ctx) error {
	return kit.OK(c, fiber.Map{"status": "ok"})
}
