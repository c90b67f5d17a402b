package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Autonomanetwork/arcadify-test/internal/service"
)

// DashboardHandler serves the treasury overview and staking panel views.
type DashboardHandler struct {
	BaseHandler
	service *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(logger *slog.Logger, svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// Treasury serves GET /treasury.
func (h *DashboardHandler) Treasury() fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.JSON(h.service.Treasury())
	}
}

// Staking serves GET /staking.
func (h *DashboardHandler) Staking() fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.JSON(h.service.Staking())
	}
}
