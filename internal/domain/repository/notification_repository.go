package repository

import "github.com/autopecaspro/gestor-api/internal/domain/entity"

// NotificationRepository define o porto de persistência do log de
// notificações (apenas append, leitura e marcação de lidas).
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id int64) (*entity.Notification, error)
	List(unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id int64) error
	MarkAllRead() error
	Delete(id int64) error
	UnreadCount() (int, error)
	// ExistsUnread indica se já há notificação não lida do mesmo tipo para a
	// mesma entidade (deduplicação de alertas de estoque baixo).
	ExistsUnread(notifType, entityType string, entityID int64) (bool, error)
}
