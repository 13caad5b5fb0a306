package repository

import "github.com/autopecaspro/gestor-api/internal/domain/entity"

// SupplierRepository define o porto de persistência para fornecedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	GetByCnpj(cnpj string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Search(query string, limit, offset int) ([]*entity.Supplier, error)
}
