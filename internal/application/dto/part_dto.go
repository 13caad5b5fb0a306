package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// PartRequest body para POST/PUT /api/parts.
type PartRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description,omitempty"`
	PartNumber    string          `json:"part_number" validate:"required"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int             `json:"stock" validate:"gte=0"`
	MinStock      int             `json:"min_stock" validate:"gte=0"`
	Location      string          `json:"location,omitempty"`
	SupplierID    *int64          `json:"supplier_id,omitempty"`
	Category      string          `json:"category,omitempty"`
	OriginalCode  string          `json:"original_code,omitempty"`
	SimilarCode01 string          `json:"similar_code_01,omitempty"`
	SimilarCode02 string          `json:"similar_code_02,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
}

// StockAdjustmentRequest body para POST /api/parts/:id/stock/add e /remove.
type StockAdjustmentRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// PartResponse representação de uma peça na API.
type PartResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	PartNumber    string          `json:"part_number"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"min_stock"`
	Location      string          `json:"location,omitempty"`
	SupplierID    *int64          `json:"supplier_id,omitempty"`
	Category      string          `json:"category,omitempty"`
	OriginalCode  string          `json:"original_code,omitempty"`
	SimilarCode01 string          `json:"similar_code_01,omitempty"`
	SimilarCode02 string          `json:"similar_code_02,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewPartResponse converte a entidade para o corpo de resposta.
func NewPartResponse(p *entity.Part) PartResponse {
	return PartResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PartNumber:    p.PartNumber,
		Manufacturer:  p.Manufacturer,
		Price:         p.Price,
		Cost:          p.Cost,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		Location:      p.Location,
		SupplierID:    p.SupplierID,
		Category:      p.Category,
		OriginalCode:  p.OriginalCode,
		SimilarCode01: p.SimilarCode01,
		SimilarCode02: p.SimilarCode02,
		Barcode:       p.Barcode,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// NewPartResponses converte a lista de entidades.
func NewPartResponses(parts []*entity.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, NewPartResponse(p))
	}
	return out
}

// StockMovementResponse linha do histórico de movimentos de uma peça.
type StockMovementResponse struct {
	ID            int64     `json:"id"`
	PartID        int64     `json:"part_id"`
	Direction     string    `json:"direction"`
	Quantity      int       `json:"quantity"`
	ReferenceType string    `json:"reference_type"`
	ReferenceID   *int64    `json:"reference_id,omitempty"`
	BatchID       string    `json:"batch_id"`
	CreatedBy     *int64    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewStockMovementResponses converte a lista de movimentos.
func NewStockMovementResponses(list []*entity.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, StockMovementResponse{
			ID:            m.ID,
			PartID:        m.PartID,
			Direction:     m.Direction,
			Quantity:      m.Quantity,
			ReferenceType: m.ReferenceType,
			ReferenceID:   m.ReferenceID,
			BatchID:       m.BatchID,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out
}
