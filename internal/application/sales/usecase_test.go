package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/apptest"
	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/sales"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

type env struct {
	uc       *sales.UseCase
	store    *apptest.Store
	customer *entity.Customer
	partA    *entity.Part
	partB    *entity.Part
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := apptest.NewStore()
	repos := store.Repos()
	customers := &apptest.CustomerRepo{S: store}

	customer := &entity.Customer{Name: "Oficina do Zé"}
	require.NoError(t, customers.Create(customer))

	partA := &entity.Part{Name: "Filtro de óleo", PartNumber: "FO-100", Stock: 10, Price: decimal.NewFromInt(30)}
	partB := &entity.Part{Name: "Vela de ignição", PartNumber: "VI-200", Stock: 8, Price: decimal.NewFromInt(25)}
	require.NoError(t, repos.Parts.Create(partA))
	require.NoError(t, repos.Parts.Create(partB))

	uc := sales.NewUseCase(&apptest.TxRunner{S: store}, repos.Sales, customers)
	return &env{uc: uc, store: store, customer: customer, partA: partA, partB: partB}
}

func saleReq(e *env, items ...dto.SaleItemRequest) dto.SaleRequest {
	return dto.SaleRequest{CustomerID: e.customer.ID, Items: items}
}

func item(partID int64, qty int, price int64) dto.SaleItemRequest {
	return dto.SaleItemRequest{PartID: partID, Quantity: qty, UnitPrice: decimal.NewFromInt(price)}
}

func TestAddSaleRemovesStockAndNotifies(t *testing.T) {
	e := newEnv(t)

	sale, err := e.uc.AddSale(context.Background(), saleReq(e,
		item(e.partA.ID, 2, 30),
		item(e.partB.ID, 1, 25),
	), 5)
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusPendente, sale.Status)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(85)))
	assert.Equal(t, 8, e.store.Parts[e.partA.ID].Stock)
	assert.Equal(t, 7, e.store.Parts[e.partB.ID].Stock)

	require.Len(t, e.store.Movements, 2)
	for _, m := range e.store.Movements {
		assert.Equal(t, entity.MovementSaida, m.Direction)
		assert.Equal(t, entity.MovementRefSale, m.ReferenceType)
		require.NotNil(t, m.ReferenceID)
		assert.Equal(t, sale.ID, *m.ReferenceID)
	}
	// mesmo lote para todas as linhas da venda
	assert.Equal(t, e.store.Movements[0].BatchID, e.store.Movements[1].BatchID)

	require.Len(t, e.store.Notifications, 1)
	for _, n := range e.store.Notifications {
		assert.Equal(t, entity.NotifNovaVenda, n.Type)
	}
}

func TestAddSaleAppliesDiscount(t *testing.T) {
	e := newEnv(t)

	sale, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: e.customer.ID,
		Discount:   decimal.NewFromInt(10),
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 2, 30)},
	}, 5)
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(50)))
}

func TestAddSaleDiscountAboveGross(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: e.customer.ID,
		Discount:   decimal.NewFromInt(100),
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 1, 30)},
	}, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddSaleInsufficientStockAbortsWholeSale(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.AddSale(context.Background(), saleReq(e,
		item(e.partA.ID, 2, 30),
		item(e.partB.ID, 50, 25), // sem saldo
	), 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// rollback completo: nada persistido, estoque intacto
	assert.Empty(t, e.store.Sales)
	assert.Empty(t, e.store.SaleItems)
	assert.Empty(t, e.store.Movements)
	assert.Equal(t, 10, e.store.Parts[e.partA.ID].Stock)
	assert.Equal(t, 8, e.store.Parts[e.partB.ID].Stock)
}

func TestAddSaleUnknownCustomer(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: 999,
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 1, 30)},
	}, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddQuoteDoesNotTouchStock(t *testing.T) {
	e := newEnv(t)

	quote, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: e.customer.ID,
		IsQuote:    true,
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 4, 30)},
	}, 5)
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusOrcamento, quote.Status)
	assert.Equal(t, 10, e.store.Parts[e.partA.ID].Stock)
	assert.Empty(t, e.store.Movements)
	assert.Empty(t, e.store.Notifications)
}

func TestConvertQuoteToSale(t *testing.T) {
	e := newEnv(t)
	quote, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: e.customer.ID,
		IsQuote:    true,
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 4, 30)},
	}, 5)
	require.NoError(t, err)

	converted, err := e.uc.ConvertQuoteToSale(context.Background(), quote.ID, 5)
	require.NoError(t, err)
	assert.False(t, converted.IsQuote)
	assert.Equal(t, entity.SaleStatusPendente, converted.Status)
	assert.Equal(t, 6, e.store.Parts[e.partA.ID].Stock)
	assert.Len(t, e.store.Notifications, 1)
}

func TestConvertNonQuote(t *testing.T) {
	e := newEnv(t)
	sale, err := e.uc.AddSale(context.Background(), saleReq(e, item(e.partA.ID, 1, 30)), 5)
	require.NoError(t, err)

	_, err = e.uc.ConvertQuoteToSale(context.Background(), sale.ID, 5)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConvertQuoteWithoutStock(t *testing.T) {
	e := newEnv(t)
	quote, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: e.customer.ID,
		IsQuote:    true,
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 50, 30)},
	}, 5)
	require.NoError(t, err)

	_, err = e.uc.ConvertQuoteToSale(context.Background(), quote.ID, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// rollback: continua orçamento, estoque intacto
	assert.True(t, e.store.Sales[quote.ID].IsQuote)
	assert.Equal(t, 10, e.store.Parts[e.partA.ID].Stock)
}

func TestUpdateSaleReverseThenReapply(t *testing.T) {
	e := newEnv(t)
	sale, err := e.uc.AddSale(context.Background(), saleReq(e, item(e.partA.ID, 2, 30)), 5)
	require.NoError(t, err)
	require.Equal(t, 8, e.store.Parts[e.partA.ID].Stock)

	_, err = e.uc.UpdateSale(context.Background(), sale.ID, saleReq(e, item(e.partB.ID, 3, 25)), 5)
	require.NoError(t, err)

	// linhas antigas devolvidas, novas baixadas
	assert.Equal(t, 10, e.store.Parts[e.partA.ID].Stock)
	assert.Equal(t, 5, e.store.Parts[e.partB.ID].Stock)

	items, err := e.store.Repos().Sales.ItemsBySale(sale.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, e.partB.ID, items[0].PartID)
}

func TestUpdateSaleToQuoteReleasesStock(t *testing.T) {
	e := newEnv(t)
	sale, err := e.uc.AddSale(context.Background(), saleReq(e, item(e.partA.ID, 2, 30)), 5)
	require.NoError(t, err)

	updated, err := e.uc.UpdateSale(context.Background(), sale.ID, dto.SaleRequest{
		CustomerID: e.customer.ID,
		IsQuote:    true,
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 2, 30)},
	}, 5)
	require.NoError(t, err)
	assert.True(t, updated.IsQuote)
	assert.Equal(t, 10, e.store.Parts[e.partA.ID].Stock)
}

func TestMarkSalePaidCreatesSingleTransaction(t *testing.T) {
	e := newEnv(t)
	sale, err := e.uc.AddSale(context.Background(), saleReq(e, item(e.partA.ID, 2, 30)), 5)
	require.NoError(t, err)

	paid, err := e.uc.MarkSalePaid(context.Background(), sale.ID, dto.MarkSalePaidRequest{PaymentMethod: "PIX"}, 9)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaga, paid.Status)
	assert.Equal(t, "PIX", paid.PaymentMethod)
	require.NotNil(t, paid.ClosedByUserID)
	assert.Equal(t, int64(9), *paid.ClosedByUserID)

	require.Len(t, e.store.Transactions, 1)
	for _, tx := range e.store.Transactions {
		assert.Equal(t, entity.TransactionReceita, tx.Type)
		assert.True(t, tx.Amount.Equal(sale.TotalAmount))
		assert.Equal(t, entity.RelatedSale, tx.RelatedEntityType)
		require.NotNil(t, tx.RelatedEntityID)
		assert.Equal(t, sale.ID, *tx.RelatedEntityID)
	}

	// cada venda gera exatamente um lançamento
	_, err = e.uc.MarkSalePaid(context.Background(), sale.ID, dto.MarkSalePaidRequest{}, 9)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, e.store.Transactions, 1)
}

func TestMarkQuotePaid(t *testing.T) {
	e := newEnv(t)
	quote, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: e.customer.ID,
		IsQuote:    true,
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 1, 30)},
	}, 5)
	require.NoError(t, err)

	_, err = e.uc.MarkSalePaid(context.Background(), quote.ID, dto.MarkSalePaidRequest{}, 5)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPaidSaleIsImmutable(t *testing.T) {
	e := newEnv(t)
	sale, err := e.uc.AddSale(context.Background(), saleReq(e, item(e.partA.ID, 2, 30)), 5)
	require.NoError(t, err)
	_, err = e.uc.MarkSalePaid(context.Background(), sale.ID, dto.MarkSalePaidRequest{}, 5)
	require.NoError(t, err)

	_, err = e.uc.UpdateSale(context.Background(), sale.ID, saleReq(e, item(e.partA.ID, 1, 30)), 5)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = e.uc.DeleteSale(context.Background(), sale.ID, 5)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteSaleRestocks(t *testing.T) {
	e := newEnv(t)
	sale, err := e.uc.AddSale(context.Background(), saleReq(e, item(e.partA.ID, 3, 30)), 5)
	require.NoError(t, err)
	require.Equal(t, 7, e.store.Parts[e.partA.ID].Stock)

	require.NoError(t, e.uc.DeleteSale(context.Background(), sale.ID, 5))
	assert.Equal(t, 10, e.store.Parts[e.partA.ID].Stock)
	assert.Empty(t, e.store.Sales)
	assert.Empty(t, e.store.SaleItems)
}

func TestDeleteQuoteDoesNotRestock(t *testing.T) {
	e := newEnv(t)
	quote, err := e.uc.AddSale(context.Background(), dto.SaleRequest{
		CustomerID: e.customer.ID,
		IsQuote:    true,
		Items:      []dto.SaleItemRequest{item(e.partA.ID, 3, 30)},
	}, 5)
	require.NoError(t, err)

	require.NoError(t, e.uc.DeleteSale(context.Background(), quote.ID, 5))
	assert.Equal(t, 10, e.store.Parts[e.partA.ID].Stock)
	assert.Empty(t, e.store.Movements)
}

func TestGetSaleWithItems(t *testing.T) {
	e := newEnv(t)
	sale, err := e.uc.AddSale(context.Background(), saleReq(e, item(e.partA.ID, 2, 30)), 5)
	require.NoError(t, err)

	got, items, err := e.uc.GetSale(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, got.ID)
	require.Len(t, items, 1)
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(60)))

	_, _, err = e.uc.GetSale(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
