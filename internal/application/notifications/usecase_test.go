package notifications_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/apptest"
	"github.com/autopecaspro/gestor-api/internal/application/notifications"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

func seed(t *testing.T, store *apptest.Store, messages ...string) []*entity.Notification {
	t.Helper()
	out := make([]*entity.Notification, 0, len(messages))
	for _, msg := range messages {
		n := &entity.Notification{Type: entity.NotifEstoqueBaixo, Message: msg, EntityType: entity.NotifEntityPart}
		require.NoError(t, store.Repos().Notifications.Create(n))
		out = append(out, n)
	}
	return out
}

func TestListUnreadOnly(t *testing.T) {
	store := apptest.NewStore()
	uc := notifications.NewUseCase(store.Repos().Notifications)
	created := seed(t, store, "a", "b", "c")

	require.NoError(t, uc.MarkRead(created[0].ID))

	all, err := uc.List(false, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	unread, err := uc.List(true, 0, 0)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	count, err := uc.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMarkAllRead(t *testing.T) {
	store := apptest.NewStore()
	uc := notifications.NewUseCase(store.Repos().Notifications)
	seed(t, store, "a", "b")

	require.NoError(t, uc.MarkAllRead())
	count, err := uc.UnreadCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkReadUnknown(t *testing.T) {
	store := apptest.NewStore()
	uc := notifications.NewUseCase(store.Repos().Notifications)
	assert.ErrorIs(t, uc.MarkRead(10), domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := apptest.NewStore()
	uc := notifications.NewUseCase(store.Repos().Notifications)
	created := seed(t, store, "a")

	require.NoError(t, uc.Delete(created[0].ID))
	assert.Empty(t, store.Notifications)

	assert.ErrorIs(t, uc.Delete(created[0].ID), domain.ErrNotFound)
}
