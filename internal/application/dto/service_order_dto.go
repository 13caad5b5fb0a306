package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// ServiceOrderItemRequest linha de OS: peça (part_id) ou serviço puro
// (is_service=true com descrição). Nunca ambos.
type ServiceOrderItemRequest struct {
	PartID      *int64          `json:"part_id,omitempty"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsService   bool            `json:"is_service"`
	Description string          `json:"description,omitempty"`
}

// ServiceOrderRequest body para POST/PUT /api/service-orders.
type ServiceOrderRequest struct {
	OrderDate      *time.Time                `json:"order_date,omitempty"`
	CustomerID     int64                     `json:"customer_id" validate:"required"`
	VehicleMake    string                    `json:"vehicle_make,omitempty"`
	VehicleModel   string                    `json:"vehicle_model,omitempty"`
	VehicleYear    string                    `json:"vehicle_year,omitempty"`
	VehiclePlate   string                    `json:"vehicle_plate,omitempty"`
	Description    string                    `json:"description,omitempty"`
	LaborCost      decimal.Decimal           `json:"labor_cost"`
	AssignedUserID *int64                    `json:"assigned_user_id,omitempty"`
	StartDate      *time.Time                `json:"start_date,omitempty"`
	Items          []ServiceOrderItemRequest `json:"items" validate:"dive"`
}

// ServiceOrderStatusRequest body para PATCH /api/service-orders/:id/status.
type ServiceOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ServiceOrderPaymentRequest body para PATCH /api/service-orders/:id/payment.
type ServiceOrderPaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// ServiceOrderItemResponse linha de OS na resposta.
type ServiceOrderItemResponse struct {
	ID          int64           `json:"id"`
	PartID      *int64          `json:"part_id,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	IsService   bool            `json:"is_service"`
	Description string          `json:"description,omitempty"`
}

// ServiceOrderResponse representação de uma OS na API.
type ServiceOrderResponse struct {
	ID             int64                      `json:"id"`
	OrderDate      time.Time                  `json:"order_date"`
	CustomerID     int64                      `json:"customer_id"`
	VehicleMake    string                     `json:"vehicle_make,omitempty"`
	VehicleModel   string                     `json:"vehicle_model,omitempty"`
	VehicleYear    string                     `json:"vehicle_year,omitempty"`
	VehiclePlate   string                     `json:"vehicle_plate,omitempty"`
	Description    string                     `json:"description,omitempty"`
	Status         string                     `json:"status"`
	TotalAmount    decimal.Decimal            `json:"total_amount"`
	LaborCost      decimal.Decimal            `json:"labor_cost"`
	PartsCost      decimal.Decimal            `json:"parts_cost"`
	AssignedUserID *int64                     `json:"assigned_user_id,omitempty"`
	StartDate      *time.Time                 `json:"start_date,omitempty"`
	EndDate        *time.Time                 `json:"end_date,omitempty"`
	PaymentStatus  string                     `json:"payment_status"`
	Items          []ServiceOrderItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// NewServiceOrderResponse converte a entidade (e itens, quando carregados).
func NewServiceOrderResponse(o *entity.ServiceOrder, items []*entity.ServiceOrderItem) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:             o.ID,
		OrderDate:      o.OrderDate,
		CustomerID:     o.CustomerID,
		VehicleMake:    o.VehicleMake,
		VehicleModel:   o.VehicleModel,
		VehicleYear:    o.VehicleYear,
		VehiclePlate:   o.VehiclePlate,
		Description:    o.Description,
		Status:         o.Status,
		TotalAmount:    o.TotalAmount,
		LaborCost:      o.LaborCost,
		PartsCost:      o.PartsCost,
		AssignedUserID: o.AssignedUserID,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		PaymentStatus:  o.PaymentStatus,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, ServiceOrderItemResponse{
			ID:          it.ID,
			PartID:      it.PartID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
			IsService:   it.IsService,
			Description: it.Description,
		})
	}
	return resp
}

// NewServiceOrderResponses converte a lista de OS (sem itens).
func NewServiceOrderResponses(orders []*entity.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewServiceOrderResponse(o, nil))
	}
	return out
}
