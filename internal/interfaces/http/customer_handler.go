package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/registry"
)

// CustomerHandler trata as requisições HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *registry.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *registry.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if !parseBody(c, &in) {
		return nil
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCustomerResponse(customer))
}

// GetByID godoc
// @Summary      Obter cliente por ID
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	customer, err := h.uc.Get(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// List godoc
// @Summary      Listar ou buscar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Termo de busca"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	list, err := h.uc.Search(c.Query("q"), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewCustomerResponses(list))
}

// Update godoc
// @Summary      Atualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do cliente"
// @Param        body  body  dto.CustomerRequest  true  "Dados do cliente"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.CustomerRequest
	if !parseBody(c, &in) {
		return nil
	}
	customer, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// Delete godoc
// @Summary      Remover cliente
// @Tags         customers
// @Security     Bearer
// @Param        id  path  int  true  "ID do cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
