package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueue_PushPop(t *testing.T) {
	q := NewMemoryQueue()
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, 1))
	require.NoError(t, q.Push(ctx, 2))

	id, err := q.Pop(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	id, err = q.Pop(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), id)
}

func TestMemoryQueue_PopBlocksUntilCancelled(t *testing.T) {
	q := NewMemoryQueue()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := q.Pop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryQueue_PopUnblocksOnPush(t *testing.T) {
	q := NewMemoryQueue()
	ctx := context.Background()

	done := make(chan uint, 1)
	go func() {
		id, err := q.Pop(ctx)
		if err == nil {
			done <- id
		}
	}()

	require.NoError(t, q.Push(ctx, 7))

	select {
	case id := <-done:
		assert.Equal(t, uint(7), id)
	case <-time.After(time.Second):
		t.Fatal("pop did not receive pushed ID")
	}
}
