package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

// newChatServer 模拟聊天服务：personality_change 回 personality_updated，
// message_from_user 回一条交易建议。
func newChatServer(t *testing.T) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			switch gjson.GetBytes(data, "event").String() {
			case "personality_change":
				p := gjson.GetBytes(data, "data.personality").String()
				_ = conn.WriteMessage(websocket.TextMessage,
					[]byte(`{"event":"personality_updated","data":{"personality":"`+p+`","message":"Now speaking as `+p+`"}}`))
			case "message_from_user":
				_ = conn.WriteMessage(websocket.TextMessage, []byte(
					`{"event":"message_from_server","data":{"message":"**RECOMMENDATION: SELL**\n**CONFIDENCE SCORE: 7/10**\nOvervalued.","data":{"stock_data":"AAPL 190.1"}}}`))
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func testRoot(t *testing.T) rootArgs {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STOCK_CHAT_URL", "")
	t.Setenv("STOCK_CHAT_PERSONALITY", "")
	return rootArgs{overrides: []string{"log_path=" + filepath.Join(t.TempDir(), "test.log")}}
}

func TestRunAskPrintsFormattedReply(t *testing.T) {
	url := newChatServer(t)
	var out bytes.Buffer

	err := runAsk(testRoot(t), []string{"--url", url, "--personality", "burry", "--timeout", "5", "Should", "I", "sell?"}, &out)
	if err != nil {
		t.Fatalf("runAsk: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Michael Burry", "📊 RECOMMENDATION: SELL", "🎯 CONFIDENCE SCORE: 7/10", "Overvalued.", "AAPL 190.1"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Now speaking as") {
		t.Fatalf("personality confirmation should be skipped:\n%s", got)
	}
}

func TestRunAskRaw(t *testing.T) {
	url := newChatServer(t)
	var out bytes.Buffer

	if err := runAsk(testRoot(t), []string{"--url", url, "--raw", "hi"}, &out); err != nil {
		t.Fatalf("runAsk: %v", err)
	}
	if !strings.HasPrefix(out.String(), "**RECOMMENDATION: SELL**") {
		t.Fatalf("raw output = %q", out.String())
	}
}

func TestRunAskRequiresQuestion(t *testing.T) {
	if err := runAsk(testRoot(t), []string{"--url", "ws://127.0.0.1:1"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error without a question")
	}
}

func TestRunPing(t *testing.T) {
	url := newChatServer(t)
	var out bytes.Buffer

	if err := runPing(testRoot(t), []string{"--url", url, "--timeout", "5"}, &out); err != nil {
		t.Fatalf("runPing: %v", err)
	}
	if !strings.HasPrefix(out.String(), "ok: "+url) {
		t.Fatalf("ping output = %q", out.String())
	}
}

func TestRunPingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	if err := runPing(testRoot(t), []string{"--url", url, "--timeout", "2"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected handshake failure")
	}
}
