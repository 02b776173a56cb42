// Package queue hands items from network goroutines to the game loop.
package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the buffer is exhausted.
var ErrQueueFull = errors.New("queue is full")

// Queue is a FIFO drained once per game tick.
type Queue interface {
	Enqueue(item interface{}) error
	Dequeue() (interface{}, error)
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
}
