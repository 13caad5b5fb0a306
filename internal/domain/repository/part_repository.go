package repository

import "github.com/autopecaspro/gestor-api/internal/domain/entity"

// PartRepository define o porto de persistência para peças.
// Unicidade de part_number e códigos alternativos é garantida por constraints
// do banco; violações chegam como domain.ErrDuplicate.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id int64) (*entity.Part, error)
	// GetForUpdate bloqueia a linha (SELECT FOR UPDATE) para mutações de estoque.
	GetForUpdate(id int64) (*entity.Part, error)
	GetByPartNumber(partNumber string) (*entity.Part, error)
	Update(part *entity.Part) error
	// UpdateStock grava apenas a coluna stock; uso exclusivo do ledger.
	UpdateStock(id int64, stock int) error
	List(limit, offset int) ([]*entity.Part, error)
	Search(query string, limit, offset int) ([]*entity.Part, error)
	BelowMinStock() ([]*entity.Part, error)
	Delete(id int64) error
}
