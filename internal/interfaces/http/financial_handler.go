package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/finance"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// FinancialHandler trata as requisições HTTP do livro financeiro (protegido,
// capacidade manage_finance).
type FinancialHandler struct {
	uc *finance.UseCase
}

// NewFinancialHandler constrói o handler.
func NewFinancialHandler(uc *finance.UseCase) *FinancialHandler {
	return &FinancialHandler{uc: uc}
}

// Create godoc
// @Summary      Lançar receita ou despesa manual
// @Tags         financial
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "Dados do lançamento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financial/transactions [post]
func (h *FinancialHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if !parseBody(c, &in) {
		return nil
	}
	tx, err := h.uc.AddTransaction(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// GetByID godoc
// @Summary      Obter lançamento por ID
// @Tags         financial
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do lançamento"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financial/transactions/{id} [get]
func (h *FinancialHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	tx, err := h.uc.GetTransaction(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewTransactionResponse(tx))
}

// List godoc
// @Summary      Listar lançamentos
// @Tags         financial
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Categoria ou descrição"
// @Param        type        query  string  false  "Receita ou Despesa"
// @Param        start_date  query  string  false  "Data inicial (AAAA-MM-DD)"
// @Param        end_date    query  string  false  "Data final (AAAA-MM-DD)"
// @Param        limit       query  int     false  "Limite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.TransactionResponse
// @Router       /api/financial/transactions [get]
func (h *FinancialHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.FinancialFilter{
		Query:     c.Query("q"),
		Type:      c.Query("type"),
		StartDate: queryDate(c, "start_date"),
		EndDate:   queryDate(c, "end_date"),
		Limit:     limit,
		Offset:    offset,
	}
	list, err := h.uc.ListTransactions(filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewTransactionResponses(list))
}

// Update godoc
// @Summary      Atualizar lançamento manual
// @Tags         financial
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do lançamento"
// @Param        body  body  dto.TransactionRequest  true  "Dados do lançamento"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/financial/transactions/{id} [put]
func (h *FinancialHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.TransactionRequest
	if !parseBody(c, &in) {
		return nil
	}
	tx, err := h.uc.UpdateTransaction(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewTransactionResponse(tx))
}

// Delete godoc
// @Summary      Remover lançamento manual
// @Tags         financial
// @Security     Bearer
// @Param        id  path  int  true  "ID do lançamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/financial/transactions/{id} [delete]
func (h *FinancialHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteTransaction(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balance godoc
// @Summary      Saldo da janela (receitas, despesas, líquido)
// @Tags         financial
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Data inicial (AAAA-MM-DD)"
// @Param        end_date    query  string  false  "Data final (AAAA-MM-DD)"
// @Success      200         {object}  dto.BalanceResponse
// @Router       /api/financial/balance [get]
func (h *FinancialHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.uc.Balance(queryDate(c, "start_date"), queryDate(c, "end_date"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(balance)
}
