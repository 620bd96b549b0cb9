package events

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event is a domain event emitted after a state change committed.
type Event struct {
	Name       string
	Key        string
	OccurredAt time.Time
	Payload    map[string]string
}

// Handler consumes one event. A handler error is reported, never swallowed.
type Handler func(ctx context.Context, event Event) error

// Publisher dispatches events to registered handlers from a single
// supervised consumer goroutine. Publishing never blocks the caller
// beyond the buffer; handler failures are counted and logged.
type Publisher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	closed   bool

	queue    chan Event
	drained  chan struct{}
	failures int64
}

func NewPublisher(bufferSize int) *Publisher {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	p := &Publisher{
		handlers: make(map[string][]Handler),
		queue:    make(chan Event, bufferSize),
		drained:  make(chan struct{}),
	}
	go p.consume()
	return p
}

// Subscribe registers a handler for an event name.
func (p *Publisher) Subscribe(name string, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[name] = append(p.handlers[name], handler)
}

// Publish enqueues the event. It returns false when the queue is full or
// the publisher is closed, so callers can log the drop instead of losing
// it silently.
func (p *Publisher) Publish(event Event) bool {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	// The read lock keeps Close from closing the queue mid-send.
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.queue <- event:
		return true
	default:
		log.Printf("Event queue full, dropping %s (%s)", event.Name, event.Key)
		return false
	}
}

// Close stops accepting events, drains the queue and waits for the
// consumer to finish.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.drained
}

func (p *Publisher) consume() {
	for event := range p.queue {
		p.dispatch(event)
	}
	close(p.drained)
}

func (p *Publisher) dispatch(event Event) {
	p.mu.RLock()
	handlers := p.handlers[event.Name]
	p.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			p.mu.Lock()
			p.failures++
			p.mu.Unlock()
			log.Printf("Event handler failed for %s (%s): %v", event.Name, event.Key, err)
		}
	}
}

// Failures reports how many handler invocations have failed so far.
func (p *Publisher) Failures() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.failures
}
