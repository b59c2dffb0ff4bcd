package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 用 glamour 渲染机器人回复中的 Markdown，按宽度缓存 renderer。
type MarkdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer 创建渲染器，style 为 glamour 内置样式名（如 "dark"）。
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &MarkdownRenderer{style: style}
}

// Lines 渲染文本；失败时返回 false，由调用方回退到纯文本。
func (m *MarkdownRenderer) Lines(text string, width int) ([]Line, bool) {
	if m == nil || strings.TrimSpace(text) == "" {
		return nil, false
	}
	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.WithError(err).Warn("markdown renderer unavailable")
			return nil, false
		}
		m.renderer = r
		m.width = width
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		log.WithError(err).Debug("markdown render failed")
		return nil, false
	}
	out = strings.Trim(out, "\n")
	lines := make([]Line, 0, strings.Count(out, "\n")+1)
	for _, l := range strings.Split(out, "\n") {
		lines = append(lines, Line{Spans: []Span{{Text: l}}})
	}
	return lines, true
}
