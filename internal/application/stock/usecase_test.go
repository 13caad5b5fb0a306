package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/apptest"
	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/stock"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

func newUseCase(t *testing.T) (*stock.UseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	repos := store.Repos()
	uc := stock.NewUseCase(&apptest.TxRunner{S: store}, repos.Parts, repos.Movements)
	return uc, store
}

func seedPart(t *testing.T, store *apptest.Store, partNumber string, stockQty, minStock int) *entity.Part {
	t.Helper()
	part := &entity.Part{
		Name:       "Filtro de óleo " + partNumber,
		PartNumber: partNumber,
		Price:      decimal.NewFromInt(35),
		Cost:       decimal.NewFromInt(20),
		Stock:      stockQty,
		MinStock:   minStock,
	}
	require.NoError(t, store.Repos().Parts.Create(part))
	return part
}

func TestCreatePartWithInitialStock(t *testing.T) {
	uc, store := newUseCase(t)
	userID := int64(7)

	part, err := uc.CreatePart(context.Background(), dto.PartRequest{
		Name:       "Pastilha de freio",
		PartNumber: " fr-1020 ",
		Price:      decimal.NewFromInt(90),
		Cost:       decimal.NewFromInt(55),
		Stock:      4,
		MinStock:   2,
	}, &userID)
	require.NoError(t, err)
	assert.Equal(t, "FR-1020", part.PartNumber)
	assert.Equal(t, 4, part.Stock)

	stored := store.Parts[part.ID]
	require.NotNil(t, stored)
	assert.Equal(t, 4, stored.Stock)

	require.Len(t, store.Movements, 1)
	mov := store.Movements[0]
	assert.Equal(t, entity.MovementEntrada, mov.Direction)
	assert.Equal(t, entity.MovementRefManual, mov.ReferenceType)
	assert.Equal(t, 4, mov.Quantity)
	require.NotNil(t, mov.CreatedBy)
	assert.Equal(t, userID, *mov.CreatedBy)
}

func TestCreatePartZeroStockHasNoMovement(t *testing.T) {
	uc, store := newUseCase(t)

	_, err := uc.CreatePart(context.Background(), dto.PartRequest{
		Name:       "Correia dentada",
		PartNumber: "CD-300",
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, store.Movements)
}

func TestCreatePartDuplicatePartNumber(t *testing.T) {
	uc, store := newUseCase(t)
	seedPart(t, store, "FR-1020", 0, 0)

	_, err := uc.CreatePart(context.Background(), dto.PartRequest{
		Name:       "Pastilha de freio",
		PartNumber: "fr-1020",
	}, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreatePartInvalid(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreatePart(context.Background(), dto.PartRequest{PartNumber: "X-1"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreatePart(context.Background(), dto.PartRequest{
		Name:       "Vela",
		PartNumber: "VL-1",
		Price:      decimal.NewFromInt(-1),
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdatePartKeepsStock(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 9, 2)

	updated, err := uc.UpdatePart(part.ID, dto.PartRequest{
		Name:       "Pastilha de freio dianteira",
		PartNumber: "FR-1020",
		Price:      decimal.NewFromInt(99),
		Stock:      0, // ignorado: estoque só muda pelo ledger
	})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, 9, store.Parts[part.ID].Stock)
	assert.Equal(t, "Pastilha de freio dianteira", store.Parts[part.ID].Name)
}

func TestUpdatePartDuplicatePartNumber(t *testing.T) {
	uc, store := newUseCase(t)
	seedPart(t, store, "FR-1020", 0, 0)
	other := seedPart(t, store, "FR-2000", 0, 0)

	_, err := uc.UpdatePart(other.ID, dto.PartRequest{
		Name:       "Outra",
		PartNumber: "FR-1020",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddStock(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 2, 1)

	require.NoError(t, uc.AddStock(context.Background(), part.ID, 5, nil))
	assert.Equal(t, 7, store.Parts[part.ID].Stock)
	require.Len(t, store.Movements, 1)
	assert.Equal(t, entity.MovementEntrada, store.Movements[0].Direction)
}

func TestRemoveStockInsufficient(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 3, 0)

	err := uc.RemoveStock(context.Background(), part.ID, 5, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// rollback: contagem e histórico intactos
	assert.Equal(t, 3, store.Parts[part.ID].Stock)
	assert.Empty(t, store.Movements)
}

func TestRemoveStockInvalidQuantity(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 3, 0)

	assert.ErrorIs(t, uc.RemoveStock(context.Background(), part.ID, 0, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.AddStock(context.Background(), part.ID, -2, nil), domain.ErrInvalidInput)
}

func TestRemoveStockUnknownPart(t *testing.T) {
	uc, _ := newUseCase(t)
	assert.ErrorIs(t, uc.RemoveStock(context.Background(), 99, 1, nil), domain.ErrNotFound)
}

func TestRemoveStockLowStockAlertDeduplicated(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 10, 8)

	require.NoError(t, uc.RemoveStock(context.Background(), part.ID, 3, nil))
	assert.Equal(t, 7, store.Parts[part.ID].Stock)
	require.Len(t, store.Notifications, 1)
	for _, n := range store.Notifications {
		assert.Equal(t, entity.NotifEstoqueBaixo, n.Type)
		assert.False(t, n.IsRead)
		require.NotNil(t, n.EntityID)
		assert.Equal(t, part.ID, *n.EntityID)
	}

	// segunda saída abaixo do mínimo não duplica o alerta não lido
	require.NoError(t, uc.RemoveStock(context.Background(), part.ID, 1, nil))
	assert.Len(t, store.Notifications, 1)
}

func TestAddStockBelowMinStillAlerts(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 0, 5)

	// reposição insuficiente: 0 + 2 continua abaixo do mínimo 5
	require.NoError(t, uc.AddStock(context.Background(), part.ID, 2, nil))
	assert.Equal(t, 2, store.Parts[part.ID].Stock)
	require.Len(t, store.Notifications, 1)
	for _, n := range store.Notifications {
		assert.Equal(t, entity.NotifEstoqueBaixo, n.Type)
		require.NotNil(t, n.EntityID)
		assert.Equal(t, part.ID, *n.EntityID)
	}

	// nova entrada ainda abaixo do mínimo não duplica o alerta não lido
	require.NoError(t, uc.AddStock(context.Background(), part.ID, 1, nil))
	assert.Len(t, store.Notifications, 1)
}

func TestAddStockAboveMinDoesNotAlert(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 0, 5)

	require.NoError(t, uc.AddStock(context.Background(), part.ID, 10, nil))
	assert.Equal(t, 10, store.Parts[part.ID].Stock)
	assert.Empty(t, store.Notifications)
}

func TestRemoveStockLowStockAlertAfterRead(t *testing.T) {
	uc, store := newUseCase(t)
	part := seedPart(t, store, "FR-1020", 10, 8)

	require.NoError(t, uc.RemoveStock(context.Background(), part.ID, 3, nil))
	require.Len(t, store.Notifications, 1)
	require.NoError(t, store.Repos().Notifications.MarkAllRead())

	require.NoError(t, uc.RemoveStock(context.Background(), part.ID, 1, nil))
	assert.Len(t, store.Notifications, 2)
}

func TestMovementsUnknownPart(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Movements(42, 10, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStockParts(t *testing.T) {
	uc, store := newUseCase(t)
	low := seedPart(t, store, "FR-1020", 1, 2)
	seedPart(t, store, "FR-2000", 10, 2)

	parts, err := uc.LowStockParts()
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, low.ID, parts[0].ID)
}
