package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/sales"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// SaleHandler trata as requisições HTTP de vendas e orçamentos (protegido).
type SaleHandler struct {
	uc *sales.UseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sales.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// queryDate lê uma data da query string (RFC3339 ou AAAA-MM-DD).
func queryDate(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

// Create godoc
// @Summary      Registrar venda ou orçamento
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Dados da venda"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if !parseBody(c, &in) {
		return nil
	}
	sale, err := h.uc.AddSale(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSaleResponse(sale, nil))
}

// GetByID godoc
// @Summary      Obter venda com itens
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	sale, items, err := h.uc.GetSale(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale, items))
}

// List godoc
// @Summary      Listar vendas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Termo de busca"
// @Param        status      query  string  false  "Status exato"
// @Param        is_quote    query  bool    false  "Só orçamentos (true) ou só vendas (false)"
// @Param        start_date  query  string  false  "Data inicial (AAAA-MM-DD)"
// @Param        end_date    query  string  false  "Data final (AAAA-MM-DD)"
// @Param        limit       query  int     false  "Limite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.SaleFilter{
		Query:     c.Query("q"),
		Status:    c.Query("status"),
		StartDate: queryDate(c, "start_date"),
		EndDate:   queryDate(c, "end_date"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.Query("is_quote"); raw != "" {
		isQuote := raw == "true" || raw == "1"
		filter.IsQuote = &isQuote
	}
	list, err := h.uc.ListSales(filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewSaleResponses(list))
}

// Update godoc
// @Summary      Atualizar venda (devolve e reaplica estoque)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da venda"
// @Param        body  body  dto.SaleRequest  true  "Dados da venda"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.SaleRequest
	if !parseBody(c, &in) {
		return nil
	}
	sale, err := h.uc.UpdateSale(c.UserContext(), id, in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale, nil))
}

// Delete godoc
// @Summary      Excluir venda (devolve o estoque)
// @Tags         sales
// @Security     Bearer
// @Param        id  path  int  true  "ID da venda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteSale(c.UserContext(), id, GetUserID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Convert godoc
// @Summary      Converter orçamento em venda
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do orçamento"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/convert [post]
func (h *SaleHandler) Convert(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	sale, err := h.uc.ConvertQuoteToSale(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale, nil))
}

// MarkPaid godoc
// @Summary      Marcar venda como paga (lança a receita)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da venda"
// @Param        body  body  dto.MarkSalePaidRequest  false  "Forma de pagamento"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pay [post]
func (h *SaleHandler) MarkPaid(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.MarkSalePaidRequest
	if len(c.Body()) > 0 {
		if !parseBody(c, &in) {
			return nil
		}
	}
	sale, err := h.uc.MarkSalePaid(c.UserContext(), id, in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale, nil))
}
