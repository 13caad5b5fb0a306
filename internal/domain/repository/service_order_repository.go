package repository

import (
	"time"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// ServiceOrderFilter filtros de listagem de ordens de serviço.
type ServiceOrderFilter struct {
	Query          string // cliente, placa, modelo ou descrição
	Status         string
	StartDate      *time.Time
	EndDate        *time.Time
	AssignedUserID *int64
	Limit          int
	Offset         int
}

// ServiceOrderRepository define o porto de persistência para ordens de
// serviço e seus itens (peças e serviços).
type ServiceOrderRepository interface {
	Create(order *entity.ServiceOrder) error
	GetByID(id int64) (*entity.ServiceOrder, error)
	Update(order *entity.ServiceOrder) error
	// UpdateStatus altera apenas o status; endDate é carimbada quando não nula.
	UpdateStatus(id int64, status string, endDate *time.Time) error
	UpdatePaymentStatus(id int64, paymentStatus string) error
	Delete(id int64) error
	List(filter ServiceOrderFilter) ([]*entity.ServiceOrder, error)

	CreateItem(item *entity.ServiceOrderItem) error
	ItemsByOrder(orderID int64) ([]*entity.ServiceOrderItem, error)
	DeleteItems(orderID int64) error
}
