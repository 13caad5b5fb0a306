package dto

import (
	"time"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// SupplierRequest body para POST/PUT /api/suppliers.
type SupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	Cnpj          string `json:"cnpj,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Address       string `json:"address,omitempty"`
}

// SupplierResponse representação de um fornecedor na API.
type SupplierResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Cnpj          string    `json:"cnpj,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSupplierResponse converte a entidade.
func NewSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		Cnpj:          s.Cnpj,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// NewSupplierResponses converte a lista de fornecedores.
func NewSupplierResponses(list []*entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewSupplierResponse(s))
	}
	return out
}
