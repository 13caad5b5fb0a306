package serviceorders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/apptest"
	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/serviceorders"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

type env struct {
	uc       *serviceorders.UseCase
	store    *apptest.Store
	customer *entity.Customer
	part     *entity.Part
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := apptest.NewStore()
	repos := store.Repos()
	customers := &apptest.CustomerRepo{S: store}

	customer := &entity.Customer{Name: "Maria Souza"}
	require.NoError(t, customers.Create(customer))

	part := &entity.Part{Name: "Amortecedor", PartNumber: "AM-500", Stock: 6, Price: decimal.NewFromInt(180)}
	require.NoError(t, repos.Parts.Create(part))

	uc := serviceorders.NewUseCase(&apptest.TxRunner{S: store}, repos.ServiceOrders, customers)
	return &env{uc: uc, store: store, customer: customer, part: part}
}

func partItem(partID int64, qty int, price int64) dto.ServiceOrderItemRequest {
	return dto.ServiceOrderItemRequest{PartID: &partID, Quantity: qty, UnitPrice: decimal.NewFromInt(price)}
}

func serviceItem(desc string, price int64) dto.ServiceOrderItemRequest {
	return dto.ServiceOrderItemRequest{IsService: true, Description: desc, Quantity: 1, UnitPrice: decimal.NewFromInt(price)}
}

func orderReq(e *env, items ...dto.ServiceOrderItemRequest) dto.ServiceOrderRequest {
	return dto.ServiceOrderRequest{
		CustomerID:   e.customer.ID,
		VehiclePlate: "abc1d23",
		LaborCost:    decimal.NewFromInt(100),
		Items:        items,
	}
}

func TestAddOrderRemovesStockForPartLinesOnly(t *testing.T) {
	e := newEnv(t)

	order, err := e.uc.AddOrder(context.Background(), orderReq(e,
		partItem(e.part.ID, 2, 180),
		serviceItem("Troca de amortecedores", 150),
	), 3)
	require.NoError(t, err)

	assert.Equal(t, entity.OSStatusPendente, order.Status)
	assert.Equal(t, entity.OSPaymentPendente, order.PaymentStatus)
	assert.Equal(t, "ABC1D23", order.VehiclePlate)
	// total = mão de obra + linhas; parts_cost só as linhas de peça
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(610)))
	assert.True(t, order.PartsCost.Equal(decimal.NewFromInt(360)))

	assert.Equal(t, 4, e.store.Parts[e.part.ID].Stock)
	require.Len(t, e.store.Movements, 1)
	assert.Equal(t, entity.MovementRefServiceOrder, e.store.Movements[0].ReferenceType)

	require.Len(t, e.store.Notifications, 1)
	for _, n := range e.store.Notifications {
		assert.Equal(t, entity.NotifNovaOS, n.Type)
	}
}

func TestAddOrderItemPartAndServiceAreExclusive(t *testing.T) {
	e := newEnv(t)

	// linha com peça E marcada como serviço
	bad := partItem(e.part.ID, 1, 180)
	bad.IsService = true
	_, err := e.uc.AddOrder(context.Background(), orderReq(e, bad), 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// linha sem peça e sem flag de serviço
	_, err = e.uc.AddOrder(context.Background(), orderReq(e, dto.ServiceOrderItemRequest{
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(50),
	}), 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// serviço sem descrição
	_, err = e.uc.AddOrder(context.Background(), orderReq(e, dto.ServiceOrderItemRequest{
		IsService: true,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(50),
	}), 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddOrderInsufficientStockAborts(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.AddOrder(context.Background(), orderReq(e, partItem(e.part.ID, 50, 180)), 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, e.store.Orders)
	assert.Equal(t, 6, e.store.Parts[e.part.ID].Stock)
}

func TestUpdateOrderReverseThenReapply(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, partItem(e.part.ID, 2, 180)), 3)
	require.NoError(t, err)
	require.Equal(t, 4, e.store.Parts[e.part.ID].Stock)

	updated, err := e.uc.UpdateOrder(context.Background(), order.ID, orderReq(e,
		partItem(e.part.ID, 1, 180),
		serviceItem("Alinhamento", 80),
	), 3)
	require.NoError(t, err)

	assert.Equal(t, 5, e.store.Parts[e.part.ID].Stock)
	assert.True(t, updated.PartsCost.Equal(decimal.NewFromInt(180)))

	items, err := e.store.Repos().ServiceOrders.ItemsByOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestUpdateOrderPreservesStatuses(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, partItem(e.part.ID, 1, 180)), 3)
	require.NoError(t, err)

	_, err = e.uc.UpdateStatus(context.Background(), order.ID, entity.OSStatusEmAndamento)
	require.NoError(t, err)

	updated, err := e.uc.UpdateOrder(context.Background(), order.ID, orderReq(e, partItem(e.part.ID, 1, 180)), 3)
	require.NoError(t, err)
	assert.Equal(t, entity.OSStatusEmAndamento, updated.Status)
	assert.Equal(t, entity.OSStatusEmAndamento, e.store.Orders[order.ID].Status)
}

func TestUpdateStatusConcluidaStampsEndDate(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, serviceItem("Revisão", 200)), 3)
	require.NoError(t, err)

	updated, err := e.uc.UpdateStatus(context.Background(), order.ID, entity.OSStatusConcluida)
	require.NoError(t, err)
	assert.NotNil(t, updated.EndDate)
	assert.NotNil(t, e.store.Orders[order.ID].EndDate)

	// notificação de OS atualizada além da de abertura
	var updates int
	for _, n := range e.store.Notifications {
		if n.Type == entity.NotifOSAtualizada {
			updates++
		}
	}
	assert.Equal(t, 1, updates)
}

func TestUpdateStatusUnknown(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, serviceItem("Revisão", 200)), 3)
	require.NoError(t, err)

	_, err = e.uc.UpdateStatus(context.Background(), order.ID, "Arquivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancelDoesNotRestock(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, partItem(e.part.ID, 2, 180)), 3)
	require.NoError(t, err)
	require.Equal(t, 4, e.store.Parts[e.part.ID].Stock)

	_, err = e.uc.UpdateStatus(context.Background(), order.ID, entity.OSStatusCancelada)
	require.NoError(t, err)
	assert.Equal(t, 4, e.store.Parts[e.part.ID].Stock)
}

func TestPaymentPagoCreatesSingleTransaction(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, partItem(e.part.ID, 1, 180)), 3)
	require.NoError(t, err)

	updated, err := e.uc.UpdatePaymentStatus(context.Background(), order.ID, entity.OSPaymentPago)
	require.NoError(t, err)
	assert.Equal(t, entity.OSPaymentPago, updated.PaymentStatus)

	require.Len(t, e.store.Transactions, 1)
	for _, tx := range e.store.Transactions {
		assert.Equal(t, entity.TransactionReceita, tx.Type)
		assert.True(t, tx.Amount.Equal(order.TotalAmount))
		assert.Equal(t, entity.RelatedServiceOrder, tx.RelatedEntityType)
	}

	// já Pago: nova chamada não lança de novo
	_, err = e.uc.UpdatePaymentStatus(context.Background(), order.ID, entity.OSPaymentPago)
	require.NoError(t, err)
	assert.Len(t, e.store.Transactions, 1)
}

func TestPaymentParcialDoesNotCreateTransaction(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, serviceItem("Revisão", 200)), 3)
	require.NoError(t, err)

	_, err = e.uc.UpdatePaymentStatus(context.Background(), order.ID, entity.OSPaymentParcial)
	require.NoError(t, err)
	assert.Empty(t, e.store.Transactions)
}

func TestPaymentStatusUnknown(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e, serviceItem("Revisão", 200)), 3)
	require.NoError(t, err)

	_, err = e.uc.UpdatePaymentStatus(context.Background(), order.ID, "Estornado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteOrderRestocksPartLinesOnly(t *testing.T) {
	e := newEnv(t)
	order, err := e.uc.AddOrder(context.Background(), orderReq(e,
		partItem(e.part.ID, 2, 180),
		serviceItem("Troca", 150),
	), 3)
	require.NoError(t, err)
	require.Equal(t, 4, e.store.Parts[e.part.ID].Stock)

	require.NoError(t, e.uc.DeleteOrder(context.Background(), order.ID, 3))
	assert.Equal(t, 6, e.store.Parts[e.part.ID].Stock)
	assert.Empty(t, e.store.Orders)
	assert.Empty(t, e.store.OrderItems)
}

func TestGetOrderUnknown(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.uc.GetOrder(404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
