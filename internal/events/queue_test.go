package events

import (
	"context"
	"errors"
	"testing"
)

func TestQueueBroadcastsToSubscribers(t *testing.T) {
	q := NewQueue(2)
	a := q.Subscribe()
	b := q.Subscribe()

	ev := Event{Name: MessageFromServer, Payload: ServerMessage{Message: "hi"}}
	if err := q.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	for i, ch := range []<-chan Event{a, b} {
		got := <-ch
		if got.Name != MessageFromServer {
			t.Fatalf("subscriber %d got %q", i, got.Name)
		}
	}
}

func TestQueueDropsForSlowSubscriber(t *testing.T) {
	q := NewQueue(1)
	_ = q.Subscribe()

	if err := q.Publish(context.Background(), Event{Name: Connected}); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if err := q.Publish(context.Background(), Event{Name: Disconnected}); !errors.Is(err, ErrEventDropped) {
		t.Fatalf("expected ErrEventDropped, got %v", err)
	}
}

func TestQueueClose(t *testing.T) {
	q := NewQueue(0)
	sub := q.Subscribe()
	q.Close()
	q.Close()

	if _, ok := <-sub; ok {
		t.Fatalf("subscription should be closed")
	}
	if err := q.Publish(context.Background(), Event{Name: Connected}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}
	if _, ok := <-q.Subscribe(); ok {
		t.Fatalf("subscribe after close should return a closed channel")
	}
}
