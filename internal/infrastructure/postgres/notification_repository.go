package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, created_at, type, message, is_read, entity_id, COALESCE(entity_type, '')`

// NotificationRepo implementação de NotificationRepository (usável com pool ou tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(&n.ID, &n.Timestamp, &n.Type, &n.Message, &n.IsRead, &n.EntityID, &n.EntityType)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create persiste a notificação e preenche o ID gerado.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (type, message, is_read, entity_id, entity_type, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		n.Type, n.Message, n.IsRead, n.EntityID, nullIfEmpty(n.EntityType),
	).Scan(&n.ID, &n.Timestamp)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtém uma notificação por ID.
func (r *NotificationRepo) GetByID(id int64) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// List lista notificações, mais recentes primeiro.
func (r *NotificationRepo) List(unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications`
	if unreadOnly {
		query += ` WHERE is_read = FALSE`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// MarkRead marca uma notificação como lida.
func (r *NotificationRepo) MarkRead(id int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead marca todas as notificações como lidas.
func (r *NotificationRepo) MarkAllRead() error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE`)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// Delete remove a notificação.
func (r *NotificationRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UnreadCount devolve o total de notificações não lidas.
func (r *NotificationRepo) UnreadCount() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notifications WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// ExistsUnread verifica se já existe notificação não lida do mesmo tipo para a
// mesma entidade.
func (r *NotificationRepo) ExistsUnread(notifType, entityType string, entityID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE type = $1 AND entity_type = $2 AND entity_id = $3 AND is_read = FALSE
		)`, notifType, entityType, entityID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check unread notification: %w", err)
	}
	return exists, nil
}
