package event

import "github.com/lixenwraith/turtle-dive/parameter"

// EventQueue is a fixed ring buffer of game events
// Thread-Safety: single producer and consumer on the frame loop goroutine
//
// Overflow: oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // read index
	tail   uint64 // write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest when the buffer is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
