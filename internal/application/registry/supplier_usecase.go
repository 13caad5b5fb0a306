package registry

import (
	"strings"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// SupplierUseCase cadastro de fornecedores. Nome e CNPJ são únicos.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers}
}

func supplierFromRequest(req dto.SupplierRequest) *entity.Supplier {
	return &entity.Supplier{
		Name:          strings.TrimSpace(req.Name),
		Cnpj:          strings.TrimSpace(req.Cnpj),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Address:       strings.TrimSpace(req.Address),
	}
}

// Create cadastra o fornecedor.
func (uc *SupplierUseCase) Create(req dto.SupplierRequest) (*entity.Supplier, error) {
	supplier := supplierFromRequest(req)
	if supplier.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.suppliers.GetByName(supplier.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if supplier.Cnpj != "" {
		existing, err := uc.suppliers.GetByCnpj(supplier.Cnpj)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if err := uc.suppliers.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Get obtém um fornecedor por ID.
func (uc *SupplierUseCase) Get(id int64) (*entity.Supplier, error) {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// Update regrava o fornecedor.
func (uc *SupplierUseCase) Update(id int64, req dto.SupplierRequest) (*entity.Supplier, error) {
	current, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	supplier := supplierFromRequest(req)
	if supplier.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if supplier.Name != current.Name {
		existing, err := uc.suppliers.GetByName(supplier.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	if supplier.Cnpj != "" && supplier.Cnpj != current.Cnpj {
		existing, err := uc.suppliers.GetByCnpj(supplier.Cnpj)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	supplier.ID = id
	supplier.CreatedAt = current.CreatedAt
	if err := uc.suppliers.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete remove o fornecedor. Fornecedores com peças devolvem ErrConflict.
func (uc *SupplierUseCase) Delete(id int64) error {
	return uc.suppliers.Delete(id)
}

// List lista fornecedores paginados.
func (uc *SupplierUseCase) List(limit, offset int) ([]*entity.Supplier, error) {
	return uc.suppliers.List(limit, offset)
}

// Search busca por nome, CNPJ, contato ou email.
func (uc *SupplierUseCase) Search(query string, limit, offset int) ([]*entity.Supplier, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.suppliers.List(limit, offset)
	}
	return uc.suppliers.Search(query, limit, offset)
}
