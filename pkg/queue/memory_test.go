package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_Order(t *testing.T) {
	q := NewInMemoryQueue(4)
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.Equal(t, 3, q.Size())

	item, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 0, item)

	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2}, items)
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_Full(t *testing.T) {
	q := NewInMemoryQueue(2)
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.ErrorIs(t, q.Enqueue("c"), ErrQueueFull)

	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.NoError(t, q.Enqueue("c"))
}

func TestInMemoryQueue_Empty(t *testing.T) {
	q := NewInMemoryQueue(0)
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)

	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInMemoryQueue_ConcurrentProducers(t *testing.T) {
	q := NewInMemoryQueue(QueueBufferSize)
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				assert.NoError(t, q.Enqueue(i))
			}
		}()
	}
	wg.Wait()

	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Len(t, items, 800)
}
