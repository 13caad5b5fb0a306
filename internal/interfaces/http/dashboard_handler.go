package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/analytics"
)

// DashboardHandler trata o painel de indicadores (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Indicadores da tela inicial
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
