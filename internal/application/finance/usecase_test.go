package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/apptest"
	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/finance"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

func newUseCase(t *testing.T) (*finance.UseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	return finance.NewUseCase(store.Repos().Finance), store
}

func TestAddTransaction(t *testing.T) {
	uc, store := newUseCase(t)

	tx, err := uc.AddTransaction(dto.TransactionRequest{
		Amount:      decimal.NewFromInt(250),
		Type:        entity.TransactionDespesa,
		Category:    "Aluguel",
		Description: "  Aluguel da loja  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aluguel da loja", tx.Description)
	assert.Len(t, store.Transactions, 1)
}

func TestAddTransactionInvalid(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.AddTransaction(dto.TransactionRequest{
		Amount: decimal.NewFromInt(10),
		Type:   "Transferência",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddTransaction(dto.TransactionRequest{
		Amount: decimal.Zero,
		Type:   entity.TransactionReceita,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddTransaction(dto.TransactionRequest{
		Amount: decimal.NewFromInt(-5),
		Type:   entity.TransactionDespesa,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAutomaticEntriesAreImmutable(t *testing.T) {
	uc, store := newUseCase(t)

	saleID := int64(12)
	auto := &entity.FinancialTransaction{
		TransactionDate:   time.Now(),
		Amount:            decimal.NewFromInt(90),
		Type:              entity.TransactionReceita,
		Category:          "Venda",
		RelatedEntityID:   &saleID,
		RelatedEntityType: entity.RelatedSale,
	}
	require.NoError(t, store.Repos().Finance.Create(auto))

	_, err := uc.UpdateTransaction(auto.ID, dto.TransactionRequest{
		Amount: decimal.NewFromInt(1),
		Type:   entity.TransactionReceita,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = uc.DeleteTransaction(auto.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, store.Transactions, 1)
}

func TestUpdateAndDeleteManualEntry(t *testing.T) {
	uc, store := newUseCase(t)

	tx, err := uc.AddTransaction(dto.TransactionRequest{
		Amount: decimal.NewFromInt(40),
		Type:   entity.TransactionDespesa,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateTransaction(tx.ID, dto.TransactionRequest{
		Amount:   decimal.NewFromInt(55),
		Type:     entity.TransactionDespesa,
		Category: "Limpeza",
	})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(55)))

	require.NoError(t, uc.DeleteTransaction(tx.ID))
	assert.Empty(t, store.Transactions)
}

func TestGetTransactionUnknown(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.GetTransaction(77)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBalance(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.AddTransaction(dto.TransactionRequest{Amount: decimal.NewFromInt(300), Type: entity.TransactionReceita})
	require.NoError(t, err)
	_, err = uc.AddTransaction(dto.TransactionRequest{Amount: decimal.NewFromInt(120), Type: entity.TransactionDespesa})
	require.NoError(t, err)

	balance, err := uc.Balance(nil, nil)
	require.NoError(t, err)
	assert.True(t, balance.Revenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, balance.Expense.Equal(decimal.NewFromInt(120)))
	assert.True(t, balance.Net.Equal(decimal.NewFromInt(180)))
}

func TestBalanceWindowExcludesOutside(t *testing.T) {
	uc, _ := newUseCase(t)

	old := time.Now().AddDate(0, -2, 0)
	_, err := uc.AddTransaction(dto.TransactionRequest{
		TransactionDate: &old,
		Amount:          decimal.NewFromInt(500),
		Type:            entity.TransactionReceita,
	})
	require.NoError(t, err)
	_, err = uc.AddTransaction(dto.TransactionRequest{Amount: decimal.NewFromInt(100), Type: entity.TransactionReceita})
	require.NoError(t, err)

	start := time.Now().AddDate(0, 0, -7)
	balance, err := uc.Balance(&start, nil)
	require.NoError(t, err)
	assert.True(t, balance.Revenue.Equal(decimal.NewFromInt(100)))
}

func TestListTransactionsByType(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.AddTransaction(dto.TransactionRequest{Amount: decimal.NewFromInt(300), Type: entity.TransactionReceita})
	require.NoError(t, err)
	_, err = uc.AddTransaction(dto.TransactionRequest{Amount: decimal.NewFromInt(120), Type: entity.TransactionDespesa})
	require.NoError(t, err)

	list, err := uc.ListTransactions(repository.FinancialFilter{Type: entity.TransactionDespesa})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.TransactionDespesa, list[0].Type)
}
