package queue

import "context"

const memoryQueueCapacity = 1024

// MemoryQueue is an in-process notification queue used when Redis is
// disabled. IDs enqueued before a crash are not lost for good; the worker's
// pending scan picks the rows up from the database.
type MemoryQueue struct {
	ch chan uint
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{ch: make(chan uint, memoryQueueCapacity)}
}

func (q *MemoryQueue) Push(ctx context.Context, notificationID uint) error {
	select {
	case q.ch <- notificationID:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Pop(ctx context.Context) (uint, error) {
	select {
	case id := <-q.ch:
		return id, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
