package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherRoutesByPayload(t *testing.T) {
	var got []string
	d := Dispatcher{
		OnServerMessage:      func(m ServerMessage) { got = append(got, "msg:"+m.Message) },
		OnPersonalityUpdated: func(p PersonalityUpdate) { got = append(got, "pers:"+p.Personality) },
		OnError:              func(e ErrorNotice) { got = append(got, "err:"+e.Detail) },
		OnDisconnected:       func(c ConnectionState) { got = append(got, "down:"+c.Reason) },
	}

	d.Dispatch(Event{Name: MessageFromServer, Payload: ServerMessage{Message: "hi"}})
	d.Dispatch(Event{Name: PersonalityUpdated, Payload: PersonalityUpdate{Personality: "Phil Fisher"}})
	d.Dispatch(Event{Name: TransportError, Payload: ErrorNotice{Detail: "boom"}})
	d.Dispatch(Event{Name: Disconnected, Payload: ConnectionState{Reason: "eof"}})
	if handled := d.Dispatch(Event{Name: Connected, Payload: ConnectionState{}}); handled {
		t.Fatalf("connect has no handler and should report unhandled")
	}
	if handled := d.Dispatch(Event{Name: "weird", Payload: 1}); handled {
		t.Fatalf("unknown payload should be unhandled")
	}

	want := []string{"msg:hi", "pers:Phil Fisher", "err:boom", "down:eof"}
	if len(got) != len(want) {
		t.Fatalf("got=%v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got=%v want %v", got, want)
		}
	}
}

func TestQueueFanOutAndClose(t *testing.T) {
	q := NewQueue(1)
	a := q.Subscribe()
	b := q.Subscribe()

	ev := Event{Name: MessageFromServer, Payload: ServerMessage{Message: "x"}}
	if err := q.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if (<-a).Name != MessageFromServer || (<-b).Name != MessageFromServer {
		t.Fatalf("subscribers did not receive event")
	}

	_ = q.Publish(context.Background(), ev)
	if err := q.Publish(context.Background(), ev); !errors.Is(err, ErrEventDropped) {
		t.Fatalf("expected ErrEventDropped on full buffer, got %v", err)
	}

	q.Close()
	if err := q.Publish(context.Background(), ev); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}
	<-a
	if _, ok := <-a; ok {
		t.Fatalf("expected closed channel")
	}
	if _, ok := <-q.Subscribe(); ok {
		t.Fatalf("subscribe after close should return closed channel")
	}
}
