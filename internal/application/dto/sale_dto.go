package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// SaleItemRequest linha de venda no corpo da requisição.
type SaleItemRequest struct {
	PartID    int64           `json:"part_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleRequest body para POST/PUT /api/sales.
type SaleRequest struct {
	SaleDate      *time.Time        `json:"sale_date,omitempty"`
	CustomerID    int64             `json:"customer_id" validate:"required"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	IsQuote       bool              `json:"is_quote"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// MarkSalePaidRequest body para POST /api/sales/:id/pay.
type MarkSalePaidRequest struct {
	PaymentMethod string `json:"payment_method,omitempty"`
}

// SaleItemResponse linha de venda na resposta.
type SaleItemResponse struct {
	ID        int64           `json:"id"`
	PartID    int64           `json:"part_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse representação de uma venda na API.
type SaleResponse struct {
	ID             int64              `json:"id"`
	SaleDate       time.Time          `json:"sale_date"`
	CustomerID     int64              `json:"customer_id"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Discount       decimal.Decimal    `json:"discount"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
	UserID         int64              `json:"user_id"`
	Status         string             `json:"status"`
	ClosedByUserID *int64             `json:"closed_by_user_id,omitempty"`
	IsQuote        bool               `json:"is_quote"`
	Items          []SaleItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// NewSaleResponse converte a entidade (e itens, quando carregados).
func NewSaleResponse(s *entity.Sale, items []*entity.SaleItem) SaleResponse {
	resp := SaleResponse{
		ID:             s.ID,
		SaleDate:       s.SaleDate,
		CustomerID:     s.CustomerID,
		TotalAmount:    s.TotalAmount,
		Discount:       s.Discount,
		PaymentMethod:  s.PaymentMethod,
		UserID:         s.UserID,
		Status:         s.Status,
		ClosedByUserID: s.ClosedByUserID,
		IsQuote:        s.IsQuote,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:        it.ID,
			PartID:    it.PartID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}

// NewSaleResponses converte a lista de vendas (sem itens).
func NewSaleResponses(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewSaleResponse(s, nil))
	}
	return out
}
