package render

import (
	"slices"
	"strings"
	"testing"

	"stock-chat/internal/format"
)

func TestBlockLinesTradingAdvice(t *testing.T) {
	blocks := format.Render(format.Message{
		Text:        "**RECOMMENDATION: HOLD steady**\n**CONFIDENCE SCORE: 5/10**\nFair value.\nWait.",
		Sender:      format.SenderBot,
		Personality: "Benjamin Graham",
	})
	got := LinesToPlainStrings(BlockLines(blocks, 20, BlockOptions{}))
	want := []string{
		"Benjamin Graham",
		"📊 RECOMMENDATION:",
		"HOLD steady",
		"🎯 CONFIDENCE SCORE:",
		"5/10",
		strings.Repeat("─", 20),
		"Fair value.",
		"Wait.",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("lines:\n%q\nwant:\n%q", got, want)
	}
}

func TestBlockLinesNewsWithLink(t *testing.T) {
	blocks := []format.Block{{
		Kind:  format.KindNews,
		Parts: format.SplitNews("📰 Apple beats\n🌐 https://example.com/a\n\n📰 Tesla dips"),
	}}
	lines := BlockLines(blocks, 40, BlockOptions{})
	got := LinesToPlainStrings(lines)
	want := []string{"📰 Apple beats", "🌐 Read Full Article", "", "📰 Tesla dips"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines=%q want %q", got, want)
	}
	if lines[1].Spans[0].Link != "https://example.com/a" {
		t.Fatalf("expected hyperlink span, got %+v", lines[1].Spans[0])
	}
	styled := LinesToStrings(lines)
	if !strings.Contains(styled[1], "https://example.com/a") {
		t.Fatalf("styled output missing hyperlink target: %q", styled[1])
	}
}

func TestBlockLinesPreformattedStock(t *testing.T) {
	blocks := []format.Block{{Kind: format.KindStock, Content: "{\n  \"symbol\": \"AAPL\"\n}", Preformatted: true}}
	got := LinesToPlainStrings(BlockLines(blocks, 40, BlockOptions{}))
	want := []string{"│ {", "│   \"symbol\": \"AAPL\"", "│ }"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines=%q want %q", got, want)
	}
}

func TestTranscriptPrefixesAndLastBot(t *testing.T) {
	tr := NewTranscript(40, BlockOptions{})
	tr.Append(EntryUser, "hi", format.Render(format.Message{Text: "hi", Sender: format.SenderUser}))
	tr.Append(EntryBot, "hello\nthere", format.Render(format.Message{Text: "hello\nthere", Sender: format.SenderBot}))
	tr.AppendNotice("Connection error. Please reconnect.")

	got := LinesToPlainStrings(tr.Lines())
	want := []string{"› hi", "", "• hello", "  there", "", "! Connection error. Please reconnect."}
	if !slices.Equal(got, want) {
		t.Fatalf("lines=%q want %q", got, want)
	}
	if text, ok := tr.LastBotText(); !ok || text != "hello\nthere" {
		t.Fatalf("LastBotText=%q,%v", text, ok)
	}

	tr.Reset()
	if tr.Len() != 0 || len(tr.Lines()) != 0 {
		t.Fatalf("reset did not clear transcript")
	}
	if _, ok := tr.LastBotText(); ok {
		t.Fatalf("expected no bot message after reset")
	}
}
