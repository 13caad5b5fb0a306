package dto

import (
	"time"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// NotificationResponse representação de uma notificação na API.
type NotificationResponse struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	EntityID   *int64    `json:"entity_id,omitempty"`
	EntityType string    `json:"entity_type,omitempty"`
}

// NewNotificationResponses converte a lista de notificações.
func NewNotificationResponses(list []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, NotificationResponse{
			ID:         n.ID,
			Timestamp:  n.Timestamp,
			Type:       n.Type,
			Message:    n.Message,
			IsRead:     n.IsRead,
			EntityID:   n.EntityID,
			EntityType: n.EntityType,
		})
	}
	return out
}

// UnreadCountResponse total de notificações não lidas.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
