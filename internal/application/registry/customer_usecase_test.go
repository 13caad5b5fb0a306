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

func newCustomerUseCase() (*registry.CustomerUseCase, *apptest.Store) {
	store := apptest.NewStore()
	return registry.NewCustomerUseCase(&apptest.CustomerRepo{S: store}), store
}

func TestCreateCustomer(t *testing.T) {
	uc, store := newCustomerUseCase()

	customer, err := uc.Create(dto.CustomerRequest{
		Name:    "  João da Silva  ",
		CpfCnpj: "123.456.789-00",
		City:    "Campinas",
	})
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", customer.Name)
	assert.Len(t, store.Customers, 1)
}

func TestCreateCustomerWithoutName(t *testing.T) {
	uc, _ := newCustomerUseCase()
	_, err := uc.Create(dto.CustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCustomerDuplicateCpfCnpj(t *testing.T) {
	uc, _ := newCustomerUseCase()

	_, err := uc.Create(dto.CustomerRequest{Name: "João", CpfCnpj: "123.456.789-00"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CustomerRequest{Name: "Outro João", CpfCnpj: "123.456.789-00"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateCustomersWithoutCpfCnpj(t *testing.T) {
	uc, store := newCustomerUseCase()

	// CPF/CNPJ vazio não conta como duplicado
	_, err := uc.Create(dto.CustomerRequest{Name: "Cliente A"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CustomerRequest{Name: "Cliente B"})
	require.NoError(t, err)
	assert.Len(t, store.Customers, 2)
}

func TestUpdateCustomer(t *testing.T) {
	uc, _ := newCustomerUseCase()

	created, err := uc.Create(dto.CustomerRequest{Name: "João", CpfCnpj: "111"})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.CustomerRequest{Name: "João Pedro", CpfCnpj: "111"})
	require.NoError(t, err)
	assert.Equal(t, "João Pedro", updated.Name)

	other, err := uc.Create(dto.CustomerRequest{Name: "Maria", CpfCnpj: "222"})
	require.NoError(t, err)
	_, err = uc.Update(other.ID, dto.CustomerRequest{Name: "Maria", CpfCnpj: "111"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeleteCustomerWithSales(t *testing.T) {
	uc, store := newCustomerUseCase()

	created, err := uc.Create(dto.CustomerRequest{Name: "João"})
	require.NoError(t, err)
	require.NoError(t, store.Repos().Sales.Create(&entity.Sale{CustomerID: created.ID, Status: entity.SaleStatusPendente}))

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrConflict)
}

func TestGetCustomerUnknown(t *testing.T) {
	uc, _ := newCustomerUseCase()
	_, err := uc.Get(55)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
