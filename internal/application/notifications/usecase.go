package notifications

import (
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// UseCase expõe o log de notificações: listagem, marcação de lidas e
// exclusão. As notificações em si são criadas pelos workflows.
type UseCase struct {
	notifications repository.NotificationRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(notifications repository.NotificationRepository) *UseCase {
	return &UseCase{notifications: notifications}
}

// List lista notificações, opcionalmente só as não lidas.
func (uc *UseCase) List(unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	return uc.notifications.List(unreadOnly, limit, offset)
}

// MarkRead marca uma notificação como lida.
func (uc *UseCase) MarkRead(id int64) error {
	return uc.notifications.MarkRead(id)
}

// MarkAllRead marca todas como lidas.
func (uc *UseCase) MarkAllRead() error {
	return uc.notifications.MarkAllRead()
}

// Delete remove uma notificação.
func (uc *UseCase) Delete(id int64) error {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifications.Delete(id)
}

// UnreadCount devolve o total de não lidas (badge da interface).
func (uc *UseCase) UnreadCount() (int, error) {
	return uc.notifications.UnreadCount()
}
