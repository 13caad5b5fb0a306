package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa uma peça do estoque da loja.
// Stock e MinStock são contagens inteiras; Stock só é alterado pelas operações
// de entrada/saída do ledger de estoque, nunca escrito direto pelos workflows.
type Part struct {
	ID            int64
	Name          string
	Description   string
	PartNumber    string // código único da peça
	Manufacturer  string
	Price         decimal.Decimal // preço de venda
	Cost          decimal.Decimal // custo de aquisição
	Stock         int
	MinStock      int // ponto de reposição
	Location      string
	SupplierID    *int64
	Category      string
	OriginalCode  string // código original do fabricante (único quando presente)
	SimilarCode01 string
	SimilarCode02 string
	Barcode       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
