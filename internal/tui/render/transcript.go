package render

import (
	"strings"

	"stock-chat/internal/format"
)

// EntryKind 区分对话条目来源。
type EntryKind int

const (
	EntryUser EntryKind = iota + 1
	EntryBot
	EntryNotice
)

// Entry 是 transcript 中的一条记录；Blocks 一经写入不再修改。
type Entry struct {
	Kind   EntryKind
	Raw    string
	Blocks []format.Block
}

// Transcript 维护对话条目并按宽度渲染、缓存行。
type Transcript struct {
	width    int
	opts     BlockOptions
	entries  []Entry
	rendered [][]Line
}

// NewTranscript 创建 Transcript。
func NewTranscript(width int, opts BlockOptions) *Transcript {
	if width <= 0 {
		width = 80
	}
	return &Transcript{width: width, opts: opts}
}

// SetWidth 更新渲染宽度，宽度变化时丢弃缓存。
func (t *Transcript) SetWidth(width int) {
	if width > 0 && width != t.width {
		t.width = width
		t.rendered = nil
	}
}

// Append 追加一条已格式化的消息。
func (t *Transcript) Append(kind EntryKind, raw string, blocks []format.Block) {
	t.entries = append(t.entries, Entry{Kind: kind, Raw: raw, Blocks: blocks})
}

// AppendNotice 追加一条客户端提示（不经过格式化）。
func (t *Transcript) AppendNotice(text string) {
	t.Append(EntryNotice, text, []format.Block{{Kind: format.KindText, Content: text}})
}

// Len 返回条目数量。
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the transcript entries.
func (t *Transcript) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// LastBotText 返回最近一条机器人消息的原文。
func (t *Transcript) LastBotText() (string, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Kind == EntryBot {
			return t.entries[i].Raw, true
		}
	}
	return "", false
}

// Reset clears all entries and cached render state.
func (t *Transcript) Reset() {
	t.entries = nil
	t.rendered = nil
}

// Lines 渲染全部条目，每条之间空一行。
func (t *Transcript) Lines() []Line {
	for i := len(t.rendered); i < len(t.entries); i++ {
		t.rendered = append(t.rendered, t.renderEntry(t.entries[i]))
	}
	var out []Line
	for i, lines := range t.rendered {
		if i > 0 {
			out = append(out, Line{})
		}
		out = append(out, lines...)
	}
	return out
}

func (t *Transcript) renderEntry(e Entry) []Line {
	wrapWidth := t.width - 2
	if wrapWidth < 1 {
		wrapWidth = t.width
	}
	switch e.Kind {
	case EntryUser:
		body := BlockLines(e.Blocks, wrapWidth, BlockOptions{})
		return PrefixLines(body, Span{Text: "› ", Style: userPrefixStyle}, Span{Text: "  ", Style: userIndentStyle})
	case EntryNotice:
		return PrefixLines(styledWrap(strings.TrimSpace(e.Raw), wrapWidth, noticeStyle),
			Span{Text: "! ", Style: noticeStyle}, Span{Text: "  ", Style: noticeStyle})
	default:
		body := BlockLines(e.Blocks, wrapWidth, t.opts)
		if len(body) == 0 {
			body = []Line{{}}
		}
		return PrefixLines(body, Span{Text: "• ", Style: botPrefixStyle}, Span{Text: "  ", Style: botPrefixStyle})
	}
}
