package entity

import "time"

// Supplier representa um fornecedor de peças.
type Supplier struct {
	ID            int64
	Name          string
	Cnpj          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
