package registry

import (
	"strings"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// CustomerUseCase cadastro de clientes. CPF/CNPJ é único quando informado.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

func customerFromRequest(req dto.CustomerRequest) *entity.Customer {
	return &entity.Customer{
		Name:         strings.TrimSpace(req.Name),
		CpfCnpj:      strings.TrimSpace(req.CpfCnpj),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Street:       strings.TrimSpace(req.Street),
		Number:       strings.TrimSpace(req.Number),
		Neighborhood: strings.TrimSpace(req.Neighborhood),
		City:         strings.TrimSpace(req.City),
		ZipCode:      strings.TrimSpace(req.ZipCode),
	}
}

// Create cadastra o cliente.
func (uc *CustomerUseCase) Create(req dto.CustomerRequest) (*entity.Customer, error) {
	customer := customerFromRequest(req)
	if customer.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if customer.CpfCnpj != "" {
		existing, err := uc.customers.GetByCpfCnpj(customer.CpfCnpj)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Get obtém um cliente por ID.
func (uc *CustomerUseCase) Get(id int64) (*entity.Customer, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// Update regrava o cliente.
func (uc *CustomerUseCase) Update(id int64, req dto.CustomerRequest) (*entity.Customer, error) {
	current, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	customer := customerFromRequest(req)
	if customer.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if customer.CpfCnpj != "" && customer.CpfCnpj != current.CpfCnpj {
		existing, err := uc.customers.GetByCpfCnpj(customer.CpfCnpj)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	customer.ID = id
	customer.CreatedAt = current.CreatedAt
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete remove o cliente. Clientes com vendas ou OS devolvem ErrConflict.
func (uc *CustomerUseCase) Delete(id int64) error {
	return uc.customers.Delete(id)
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(limit, offset int) ([]*entity.Customer, error) {
	return uc.customers.List(limit, offset)
}

// Search busca por nome, CPF/CNPJ, telefone ou email.
func (uc *CustomerUseCase) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.customers.List(limit, offset)
	}
	return uc.customers.Search(query, limit, offset)
}
