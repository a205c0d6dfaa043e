package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rannaghore/internal/domain/notification"
)

func TestNotificationRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n, err := notification.NewNotification(notification.KindOrderConfirmation, "rahim@example.com", map[string]string{
		"ref":          "RP-0001",
		"order_number": "RP-0001",
		"total":        "1010",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, n))
	assert.NotZero(t, n.ID())

	found, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.Equal(t, notification.KindOrderConfirmation, found.Kind())
	assert.Equal(t, "rahim@example.com", found.Recipient())
	assert.Equal(t, notification.StatusPending, found.Status())
	assert.Equal(t, "RP-0001", found.Payload()["order_number"])
}

func TestNotificationRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n, err := notification.NewNotification(notification.KindTicketConfirmation, "rahim@example.com", map[string]string{"ref": "TICKET-AAAA1111"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, n))

	n.MarkFailed("smtp connection refused")
	require.NoError(t, repo.Update(ctx, n))

	found, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.Equal(t, notification.StatusFailed, found.Status())
	assert.Equal(t, 1, found.Attempts())
	assert.Equal(t, "smtp connection refused", found.LastError())
}

func TestNotificationRepository_ListPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	pending, err := notification.NewNotification(notification.KindTicketAlert, "support@example.com", map[string]string{"ref": "TICKET-BBBB2222"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, pending))

	sent, err := notification.NewNotification(notification.KindTicketAlert, "support@example.com", map[string]string{"ref": "TICKET-CCCC3333"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, sent))
	sent.MarkSent()
	require.NoError(t, repo.Update(ctx, sent))

	list, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pending.ID(), list[0].ID())

	t.Run("limit caps the batch", func(t *testing.T) {
		another, err := notification.NewNotification(notification.KindTicketAlert, "support@example.com", map[string]string{"ref": "TICKET-DDDD4444"})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, another))

		list, err := repo.ListPending(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
