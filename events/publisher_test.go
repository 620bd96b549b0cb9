package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherDeliversToSubscribers(t *testing.T) {
	publisher := NewPublisher(8)

	var delivered atomic.Int32
	received := make(chan Event, 1)
	publisher.Subscribe(PatientRegistered, func(ctx context.Context, event Event) error {
		delivered.Add(1)
		received <- event
		return nil
	})

	ok := publisher.Publish(Event{Name: PatientRegistered, Key: "1002003000"})
	require.True(t, ok)

	select {
	case event := <-received:
		assert.Equal(t, "1002003000", event.Key)
		assert.False(t, event.OccurredAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}

	publisher.Close()
	assert.Equal(t, int32(1), delivered.Load())
	assert.Equal(t, int64(0), publisher.Failures())
}

func TestPublisherCountsHandlerFailures(t *testing.T) {
	publisher := NewPublisher(8)
	publisher.Subscribe(OrderCreated, func(ctx context.Context, event Event) error {
		return errors.New("downstream unavailable")
	})

	require.True(t, publisher.Publish(Event{Name: OrderCreated, Key: "000042"}))
	publisher.Close()

	assert.Equal(t, int64(1), publisher.Failures())
}

func TestPublisherCloseDrainsQueue(t *testing.T) {
	publisher := NewPublisher(16)

	var delivered atomic.Int32
	publisher.Subscribe(InvoiceIssued, func(ctx context.Context, event Event) error {
		delivered.Add(1)
		return nil
	})

	for i := 0; i < 10; i++ {
		require.True(t, publisher.Publish(Event{Name: InvoiceIssued, Key: "inv"}))
	}
	publisher.Close()

	// Close returns only after every queued event was dispatched.
	assert.Equal(t, int32(10), delivered.Load())
}

func TestPublishAfterCloseIsRejected(t *testing.T) {
	publisher := NewPublisher(4)
	publisher.Close()

	assert.False(t, publisher.Publish(Event{Name: PatientDeleted, Key: "55"}))
}

func TestPublisherDropsWhenQueueFull(t *testing.T) {
	publisher := NewPublisher(1)

	release := make(chan struct{})
	publisher.Subscribe(OrderCreated, func(ctx context.Context, event Event) error {
		<-release
		return nil
	})

	// First event occupies the consumer, second fills the buffer; the
	// third has nowhere to go.
	require.True(t, publisher.Publish(Event{Name: OrderCreated, Key: "1"}))
	time.Sleep(50 * time.Millisecond)
	require.True(t, publisher.Publish(Event{Name: OrderCreated, Key: "2"}))
	assert.False(t, publisher.Publish(Event{Name: OrderCreated, Key: "3"}))

	close(release)
	publisher.Close()
}
