package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stock-chat/internal/events"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

func newServer(t *testing.T, handle func(conn *websocket.Conn, r *http.Request)) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		handle(conn, r)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func next(t *testing.T, ch <-chan events.Event) events.Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatalf("event channel closed")
		}
		return ev
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return events.Event{}
}

func TestClientRoundTrip(t *testing.T) {
	gotClientID := make(chan string, 1)
	url := newServer(t, func(conn *websocket.Conn, r *http.Request) {
		gotClientID <- r.Header.Get(ClientIDHeader)
		_ = conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"event":"message_from_server","data":{"message":"Welcome!","personality":"Warren Buffett"}}`))
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			switch gjson.GetBytes(data, "event").String() {
			case "message_from_user":
				reply := `{"event":"message_from_server","data":{"message":"echo: ` + gjson.GetBytes(data, "data.message").String() + `"}}`
				_ = conn.WriteMessage(websocket.TextMessage, []byte(reply))
			case "personality_change":
				p := gjson.GetBytes(data, "data.personality").String()
				_ = conn.WriteMessage(websocket.TextMessage,
					[]byte(`{"event":"personality_updated","data":{"personality":"`+p+`","message":"changed"}}`))
			}
		}
	})

	q := events.NewQueue(16)
	sub := q.Subscribe()
	c, err := Dial(context.Background(), Options{URL: url, Queue: q, ClientID: "client-1"})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	if id := <-gotClientID; id != "client-1" {
		t.Fatalf("client id header=%q", id)
	}
	if ev := next(t, sub); ev.Name != events.Connected {
		t.Fatalf("first event=%q", ev.Name)
	}
	if ev := next(t, sub); ev.Payload.(events.ServerMessage).Message != "Welcome!" {
		t.Fatalf("welcome=%+v", ev.Payload)
	}

	if err := c.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if ev := next(t, sub); ev.Payload.(events.ServerMessage).Message != "echo: hello" {
		t.Fatalf("echo=%+v", ev.Payload)
	}

	if err := c.ChangePersonality(context.Background(), "Bill Ackman"); err != nil {
		t.Fatalf("ChangePersonality: %v", err)
	}
	ev := next(t, sub)
	if upd, ok := ev.Payload.(events.PersonalityUpdate); !ok || upd.Personality != "Bill Ackman" || upd.Message != "changed" {
		t.Fatalf("update=%+v", ev.Payload)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	ev = next(t, sub)
	if ev.Name != events.Disconnected || ev.Payload.(events.ConnectionState).Reason != "client closed" {
		t.Fatalf("disconnect=%+v", ev)
	}
	if err := c.SendMessage(context.Background(), "late"); err != ErrClosed {
		t.Fatalf("expected ErrClosed after close, got %v", err)
	}
}

func TestClientReportsAbnormalDisconnect(t *testing.T) {
	url := newServer(t, func(conn *websocket.Conn, _ *http.Request) {
		_ = conn.UnderlyingConn().Close()
	})

	q := events.NewQueue(16)
	sub := q.Subscribe()
	c, err := Dial(context.Background(), Options{URL: url, Queue: q})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()
	if c.ClientID() == "" {
		t.Fatalf("expected generated client id")
	}

	if ev := next(t, sub); ev.Name != events.Connected {
		t.Fatalf("first event=%q", ev.Name)
	}
	if ev := next(t, sub); ev.Name != events.TransportError {
		t.Fatalf("expected transport error, got %q", ev.Name)
	}
	if ev := next(t, sub); ev.Name != events.Disconnected {
		t.Fatalf("expected disconnect, got %q", ev.Name)
	}
	select {
	case <-c.Done():
	case <-time.After(3 * time.Second):
		t.Fatalf("read loop did not exit")
	}
}

func TestDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Dial(context.Background(), Options{URL: "ws" + strings.TrimPrefix(srv.URL, "http")})
	if err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected dial error with status, got %v", err)
	}
	if _, err := Dial(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
