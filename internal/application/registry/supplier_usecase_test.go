package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/apptest"
	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/registry"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

func newSupplierUseCase() (*registry.SupplierUseCase, *apptest.Store) {
	store := apptest.NewStore()
	return registry.NewSupplierUseCase(&apptest.SupplierRepo{S: store}), store
}

func TestCreateSupplier(t *testing.T) {
	uc, store := newSupplierUseCase()

	supplier, err := uc.Create(dto.SupplierRequest{
		Name: "Distribuidora Alfa",
		Cnpj: "11.222.333/0001-44",
	})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Alfa", supplier.Name)
	assert.Len(t, store.Suppliers, 1)
}

func TestCreateSupplierDuplicateName(t *testing.T) {
	uc, _ := newSupplierUseCase()

	_, err := uc.Create(dto.SupplierRequest{Name: "Distribuidora Alfa"})
	require.NoError(t, err)

	_, err = uc.Create(dto.SupplierRequest{Name: "Distribuidora Alfa"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateSupplierDuplicateCnpj(t *testing.T) {
	uc, _ := newSupplierUseCase()

	_, err := uc.Create(dto.SupplierRequest{Name: "Alfa", Cnpj: "11.222.333/0001-44"})
	require.NoError(t, err)

	_, err = uc.Create(dto.SupplierRequest{Name: "Beta", Cnpj: "11.222.333/0001-44"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeleteSupplierReferencedByPart(t *testing.T) {
	uc, store := newSupplierUseCase()

	created, err := uc.Create(dto.SupplierRequest{Name: "Alfa"})
	require.NoError(t, err)
	supplierID := created.ID
	require.NoError(t, store.Repos().Parts.Create(&entity.Part{
		Name:       "Filtro",
		PartNumber: "F-1",
		SupplierID: &supplierID,
	}))

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrConflict)
}

func TestGetSupplierUnknown(t *testing.T) {
	uc, _ := newSupplierUseCase()
	_, err := uc.Get(55)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
