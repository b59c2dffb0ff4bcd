package format

import "testing"

func TestSplitNewsSections(t *testing.T) {
	got := SplitNews("📰 Apple beats earnings\n\n📅 2025-01-01")
	want := []Part{
		{Kind: PartNewsTitle, Text: "📰 Apple beats earnings", Value: "Apple beats earnings"},
		{Kind: PartSectionBreak},
		{Kind: PartNewsDate, Text: "📅 2025-01-01", Value: "2025-01-01"},
	}
	assertParts(t, got, want)
}

func TestSplitNewsFullItem(t *testing.T) {
	text := "Top stories:\n" +
		"📰 Tesla recalls\n" +
		"📊 Sentiment: Bearish\n" +
		"📈 Relevance: 0.87\n" +
		"🔗 Source: Reuters\n" +
		"📝 Recall affects...\n" +
		"🌐 https://example.com/t\n\n"
	got := SplitNews(text)
	want := []Part{
		{Kind: PartText, Text: "Top stories:", Value: "Top stories:"},
		{Kind: PartLineBreak},
		{Kind: PartNewsTitle, Text: "📰 Tesla recalls", Value: "Tesla recalls"},
		{Kind: PartLineBreak},
		{Kind: PartNewsSentiment, Text: "📊 Sentiment: Bearish", Value: "Sentiment: Bearish"},
		{Kind: PartLineBreak},
		{Kind: PartNewsRelevance, Text: "📈 Relevance: 0.87", Value: "Relevance: 0.87"},
		{Kind: PartLineBreak},
		{Kind: PartNewsSource, Text: "🔗 Source: Reuters", Value: "Source: Reuters"},
		{Kind: PartLineBreak},
		{Kind: PartNewsDescription, Text: "📝 Recall affects...", Value: "Recall affects..."},
		{Kind: PartLineBreak},
		{Kind: PartNewsURL, Text: "🌐 https://example.com/t", Value: "https://example.com/t"},
		{Kind: PartSectionBreak},
	}
	assertParts(t, got, want)
}

func TestSplitNewsTripleNewline(t *testing.T) {
	got := SplitNews("a\n\n\nb")
	want := []Part{
		{Kind: PartText, Text: "a", Value: "a"},
		{Kind: PartSectionBreak},
		{Kind: PartLineBreak},
		{Kind: PartText, Text: "b", Value: "b"},
	}
	assertParts(t, got, want)
}

func TestClassifyNewsLineNeedsSpaceAfterGlyph(t *testing.T) {
	if p := ClassifyNewsLine("📰headline"); p.Kind != PartText {
		t.Fatalf("expected plain text for glyph without space, got %q", p.Kind)
	}
	if p := ClassifyNewsLine("  🔗 Source: AP"); p.Kind != PartNewsSource || p.Text != "  🔗 Source: AP" {
		t.Fatalf("unexpected part %+v", p)
	}
}

func assertParts(t *testing.T, got, want []Part) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("parts len=%d want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %+v want %+v", i, got[i], want[i])
		}
	}
}
