package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/stock"
)

// PartHandler trata as requisições HTTP de peças e estoque (protegido).
type PartHandler struct {
	uc *stock.UseCase
}

// NewPartHandler constrói o handler.
func NewPartHandler(uc *stock.UseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar peça
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartRequest  true  "Dados da peça"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.PartRequest
	if !parseBody(c, &in) {
		return nil
	}
	userID := GetUserID(c)
	part, err := h.uc.CreatePart(c.UserContext(), in, &userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPartResponse(part))
}

// GetByID godoc
// @Summary      Obter peça por ID
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da peça"
// @Success      200  {object}  dto.PartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	part, err := h.uc.GetPart(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewPartResponse(part))
}

// List godoc
// @Summary      Listar ou buscar peças
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Termo de busca (nome, códigos, fabricante ou ID)"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.PartResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	parts, err := h.uc.SearchParts(c.Query("q"), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewPartResponses(parts))
}

// LowStock godoc
// @Summary      Peças em ou abaixo do estoque mínimo
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PartResponse
// @Router       /api/parts/low-stock [get]
func (h *PartHandler) LowStock(c *fiber.Ctx) error {
	parts, err := h.uc.LowStockParts()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewPartResponses(parts))
}

// Update godoc
// @Summary      Atualizar dados cadastrais da peça
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da peça"
// @Param        body  body  dto.PartRequest  true  "Dados da peça"
// @Success      200   {object}  dto.PartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.PartRequest
	if !parseBody(c, &in) {
		return nil
	}
	part, err := h.uc.UpdatePart(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewPartResponse(part))
}

// Delete godoc
// @Summary      Remover peça
// @Tags         parts
// @Security     Bearer
// @Param        id  path  int  true  "ID da peça"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeletePart(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddStock godoc
// @Summary      Entrada manual de estoque
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da peça"
// @Param        body  body  dto.StockAdjustmentRequest  true  "Quantidade"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{id}/stock/add [post]
func (h *PartHandler) AddStock(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.StockAdjustmentRequest
	if !parseBody(c, &in) {
		return nil
	}
	userID := GetUserID(c)
	if err := h.uc.AddStock(c.UserContext(), id, in.Quantity, &userID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estoque atualizado"})
}

// RemoveStock godoc
// @Summary      Saída manual de estoque
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da peça"
// @Param        body  body  dto.StockAdjustmentRequest  true  "Quantidade"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parts/{id}/stock/remove [post]
func (h *PartHandler) RemoveStock(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.StockAdjustmentRequest
	if !parseBody(c, &in) {
		return nil
	}
	userID := GetUserID(c)
	if err := h.uc.RemoveStock(c.UserContext(), id, in.Quantity, &userID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estoque atualizado"})
}

// Movements godoc
// @Summary      Histórico de movimentos da peça
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID da peça"
// @Param        limit   query  int  false  "Limite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.StockMovementResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/parts/{id}/movements [get]
func (h *PartHandler) Movements(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	limit, offset := pagination(c)
	movements, err := h.uc.Movements(id, limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewStockMovementResponses(movements))
}
