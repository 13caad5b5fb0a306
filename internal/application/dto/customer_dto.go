package dto

import (
	"time"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// CustomerRequest body para POST/PUT /api/customers.
type CustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	CpfCnpj      string `json:"cpf_cnpj,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}

// CustomerResponse representação de um cliente na API.
type CustomerResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CpfCnpj      string    `json:"cpf_cnpj,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Street       string    `json:"street,omitempty"`
	Number       string    `json:"number,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	City         string    `json:"city,omitempty"`
	ZipCode      string    `json:"zip_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCustomerResponse converte a entidade.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		CpfCnpj:      c.CpfCnpj,
		Phone:        c.Phone,
		Email:        c.Email,
		Street:       c.Street,
		Number:       c.Number,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		ZipCode:      c.ZipCode,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// NewCustomerResponses converte a lista de clientes.
func NewCustomerResponses(list []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewCustomerResponse(c))
	}
	return out
}
