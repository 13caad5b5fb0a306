package finance

import (
	"strings"
	"time"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// UseCase concentra o livro financeiro. Lançamentos manuais entram por aqui;
// os automáticos (venda paga, OS paga) são criados pelos workflows dentro das
// suas transações.
type UseCase struct {
	transactions repository.FinancialTransactionRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(transactions repository.FinancialTransactionRepository) *UseCase {
	return &UseCase{transactions: transactions}
}

func transactionFromRequest(req dto.TransactionRequest) (*entity.FinancialTransaction, error) {
	if req.Type != entity.TransactionReceita && req.Type != entity.TransactionDespesa {
		return nil, domain.ErrInvalidInput
	}
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	tx := &entity.FinancialTransaction{
		TransactionDate: time.Now(),
		Amount:          req.Amount,
		Type:            req.Type,
		Category:        strings.TrimSpace(req.Category),
		Description:     strings.TrimSpace(req.Description),
	}
	if req.TransactionDate != nil {
		tx.TransactionDate = *req.TransactionDate
	}
	return tx, nil
}

// AddTransaction lança uma receita ou despesa manual.
func (uc *UseCase) AddTransaction(req dto.TransactionRequest) (*entity.FinancialTransaction, error) {
	tx, err := transactionFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetTransaction obtém um lançamento por ID.
func (uc *UseCase) GetTransaction(id int64) (*entity.FinancialTransaction, error) {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// UpdateTransaction regrava um lançamento manual. Lançamentos gerados por
// venda ou OS não podem ser alterados.
func (uc *UseCase) UpdateTransaction(id int64, req dto.TransactionRequest) (*entity.FinancialTransaction, error) {
	current, err := uc.GetTransaction(id)
	if err != nil {
		return nil, err
	}
	if current.RelatedEntityID != nil {
		return nil, domain.ErrConflict
	}
	tx, err := transactionFromRequest(req)
	if err != nil {
		return nil, err
	}
	tx.ID = id
	tx.CreatedAt = current.CreatedAt
	if err := uc.transactions.Update(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction remove um lançamento manual. Lançamentos gerados por
// venda ou OS não podem ser removidos.
func (uc *UseCase) DeleteTransaction(id int64) error {
	current, err := uc.GetTransaction(id)
	if err != nil {
		return err
	}
	if current.RelatedEntityID != nil {
		return domain.ErrConflict
	}
	return uc.transactions.Delete(id)
}

// ListTransactions lista lançamentos com filtros.
func (uc *UseCase) ListTransactions(filter repository.FinancialFilter) ([]*entity.FinancialTransaction, error) {
	return uc.transactions.List(filter)
}

// Balance devolve receitas, despesas e líquido da janela opcional.
func (uc *UseCase) Balance(start, end *time.Time) (dto.BalanceResponse, error) {
	revenue, expense, err := uc.transactions.Balance(start, end)
	if err != nil {
		return dto.BalanceResponse{}, err
	}
	return dto.BalanceResponse{
		Revenue: revenue,
		Expense: expense,
		Net:     revenue.Sub(expense),
	}, nil
}
