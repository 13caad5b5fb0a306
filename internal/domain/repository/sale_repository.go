package repository

import (
	"time"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// SaleFilter filtros de listagem de vendas/orçamentos.
type SaleFilter struct {
	Query     string // cliente, status ou forma de pagamento
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
	IsQuote   *bool
	Limit     int
	Offset    int
}

// SaleRepository define o porto de persistência para vendas e seus itens.
// A exclusão da venda remove os itens em cascata (FK ON DELETE CASCADE).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id int64) error
	List(filter SaleFilter) ([]*entity.Sale, error)

	CreateItem(item *entity.SaleItem) error
	ItemsBySale(saleID int64) ([]*entity.SaleItem, error)
	DeleteItems(saleID int64) error
}
