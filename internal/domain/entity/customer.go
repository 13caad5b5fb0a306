package entity

import "time"

// Customer representa um cliente da loja.
type Customer struct {
	ID           int64
	Name         string
	CpfCnpj      string // único quando presente
	Phone        string
	Email        string
	Street       string
	Number       string
	Neighborhood string
	City         string
	ZipCode      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
