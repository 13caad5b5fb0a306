package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/serviceorders"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// ServiceOrderHandler trata as requisições HTTP de ordens de serviço (protegido).
type ServiceOrderHandler struct {
	uc *serviceorders.UseCase
}

// NewServiceOrderHandler constrói o handler.
func NewServiceOrderHandler(uc *serviceorders.UseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ordem de serviço
// @Tags         service-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ServiceOrderRequest  true  "Dados da OS"
// @Success      201   {object}  dto.ServiceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/service-orders [post]
func (h *ServiceOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.ServiceOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	order, err := h.uc.AddOrder(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewServiceOrderResponse(order, nil))
}

// GetByID godoc
// @Summary      Obter OS com itens
// @Tags         service-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da OS"
// @Success      200  {object}  dto.ServiceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	order, items, err := h.uc.GetOrder(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewServiceOrderResponse(order, items))
}

// List godoc
// @Summary      Listar ordens de serviço
// @Tags         service-orders
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Termo de busca (placa, modelo, cliente)"
// @Param        status      query  string  false  "Status exato"
// @Param        start_date  query  string  false  "Data inicial (AAAA-MM-DD)"
// @Param        end_date    query  string  false  "Data final (AAAA-MM-DD)"
// @Param        limit       query  int     false  "Limite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.ServiceOrderResponse
// @Router       /api/service-orders [get]
func (h *ServiceOrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.ServiceOrderFilter{
		Query:     c.Query("q"),
		Status:    c.Query("status"),
		StartDate: queryDate(c, "start_date"),
		EndDate:   queryDate(c, "end_date"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.QueryInt("assigned_user_id", 0); raw > 0 {
		id := int64(raw)
		filter.AssignedUserID = &id
	}
	list, err := h.uc.ListOrders(filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewServiceOrderResponses(list))
}

// Update godoc
// @Summary      Atualizar OS (devolve e reaplica estoque das peças)
// @Tags         service-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da OS"
// @Param        body  body  dto.ServiceOrderRequest  true  "Dados da OS"
// @Success      200   {object}  dto.ServiceOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id} [put]
func (h *ServiceOrderHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.ServiceOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	order, err := h.uc.UpdateOrder(c.UserContext(), id, in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewServiceOrderResponse(order, nil))
}

// UpdateStatus godoc
// @Summary      Mudar status da OS (Concluída carimba a data de término)
// @Tags         service-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da OS"
// @Param        body  body  dto.ServiceOrderStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.ServiceOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.ServiceOrderStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	order, err := h.uc.UpdateStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewServiceOrderResponse(order, nil))
}

// UpdatePayment godoc
// @Summary      Mudar status de pagamento da OS (Pago lança a receita)
// @Tags         service-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da OS"
// @Param        body  body  dto.ServiceOrderPaymentRequest  true  "Novo status de pagamento"
// @Success      200   {object}  dto.ServiceOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id}/payment [patch]
func (h *ServiceOrderHandler) UpdatePayment(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.ServiceOrderPaymentRequest
	if !parseBody(c, &in) {
		return nil
	}
	order, err := h.uc.UpdatePaymentStatus(c.UserContext(), id, in.PaymentStatus)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewServiceOrderResponse(order, nil))
}

// Delete godoc
// @Summary      Excluir OS (devolve o estoque das peças)
// @Tags         service-orders
// @Security     Bearer
// @Param        id  path  int  true  "ID da OS"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id} [delete]
func (h *ServiceOrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteOrder(c.UserContext(), id, GetUserID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
