package entity

import "time"

// Tipos de notificação produzidos pelos workflows.
const (
	NotifEstoqueBaixo = "Estoque Baixo"
	NotifNovaVenda    = "Nova Venda"
	NotifNovaOS       = "Nova Ordem de Serviço"
	NotifOSAtualizada = "Ordem de Serviço Atualizada"
)

// Tipos de entidade referenciada por uma notificação.
const (
	NotifEntityPart         = "part"
	NotifEntitySale         = "sale"
	NotifEntityServiceOrder = "service_order"
)

// Notification é um registro passivo de evento: apenas inserido, lido e
// marcado como lido; nunca altera a entidade que referencia.
type Notification struct {
	ID         int64
	Timestamp  time.Time
	Type       string
	Message    string
	IsRead     bool
	EntityID   *int64
	EntityType string
}
