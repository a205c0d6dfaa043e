package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(KindOrderConfirmation, "rahim@example.com", map[string]string{
		"order_number": "RP-0007",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, n.Status())
	assert.Equal(t, "rahim@example.com", n.Recipient())
	assert.Equal(t, 0, n.Attempts())
}

func TestNewNotification_Validation(t *testing.T) {
	_, err := NewNotification(Kind("postcard"), "rahim@example.com", nil)
	assert.Error(t, err)

	_, err = NewNotification(KindTicketAlert, "", nil)
	assert.Error(t, err)
}

func TestNotification_MarkSent(t *testing.T) {
	n, err := NewNotification(KindTicketConfirmation, "karima@example.com", nil)
	require.NoError(t, err)

	n.MarkSent()
	assert.Equal(t, StatusSent, n.Status())
	assert.Equal(t, 1, n.Attempts())
	assert.Empty(t, n.LastError())
}

func TestNotification_MarkFailed(t *testing.T) {
	n, err := NewNotification(KindTicketAlert, "support@rannaghore.example", nil)
	require.NoError(t, err)

	n.MarkFailed("smtp: connection refused")
	assert.Equal(t, StatusFailed, n.Status())
	assert.Equal(t, 1, n.Attempts())
	assert.Equal(t, "smtp: connection refused", n.LastError())

	// A later successful retry clears the recorded error.
	n.MarkSent()
	assert.Equal(t, StatusSent, n.Status())
	assert.Equal(t, 2, n.Attempts())
	assert.Empty(t, n.LastError())
}
