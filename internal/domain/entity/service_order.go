package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma ordem de serviço. São etiquetas livres: qualquer status pode
// ser definido a partir de qualquer outro. "Cancelada" não devolve estoque;
// apenas a exclusão da OS devolve.
const (
	OSStatusPendente    = "Pendente"
	OSStatusEmAndamento = "Em Andamento"
	OSStatusConcluida   = "Concluída"
	OSStatusCancelada   = "Cancelada"
)

// Status de pagamento de uma ordem de serviço.
const (
	OSPaymentPendente = "Pendente"
	OSPaymentPago     = "Pago"
	OSPaymentParcial  = "Parcialmente Pago"
)

// ServiceOrder representa uma ordem de serviço de oficina.
// PartsCost é derivado: soma dos subtotais das linhas de peça.
type ServiceOrder struct {
	ID             int64
	OrderDate      time.Time
	CustomerID     int64
	VehicleMake    string
	VehicleModel   string
	VehicleYear    string
	VehiclePlate   string
	Description    string
	Status         string
	TotalAmount    decimal.Decimal
	LaborCost      decimal.Decimal
	PartsCost      decimal.Decimal
	AssignedUserID *int64
	StartDate      *time.Time
	EndDate        *time.Time // carimbada quando o status vira Concluída
	PaymentStatus  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ServiceOrderItem é uma linha da OS: peça (afeta estoque) ou serviço puro
// (IsService=true, exige descrição e não afeta estoque). PartID e IsService
// são mutuamente exclusivos.
type ServiceOrderItem struct {
	ID             int64
	ServiceOrderID int64
	PartID         *int64
	Quantity       int
	UnitPrice      decimal.Decimal
	Subtotal       decimal.Decimal
	IsService      bool
	Description    string
}
