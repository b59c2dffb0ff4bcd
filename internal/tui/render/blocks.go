package render

import (
	"strings"

	"stock-chat/internal/format"

	"github.com/charmbracelet/lipgloss"
)

// BlockOptions 控制 block 的终端渲染。
type BlockOptions struct {
	// Markdown 非 nil 时用于渲染无结构片段的 text block。
	Markdown *MarkdownRenderer
}

// BlockLines 按顺序把 format.Block 渲染为终端行，不再做转义：内容已由 format 清理。
func BlockLines(blocks []format.Block, width int, opts BlockOptions) []Line {
	if width <= 0 {
		width = 80
	}
	var buf Buffer
	for _, b := range blocks {
		buf.WriteLines(blockLines(b, width, opts)...)
	}
	return buf.Lines
}

func blockLines(b format.Block, width int, opts BlockOptions) []Line {
	switch b.Kind {
	case format.KindPersonality:
		return []Line{textLine(b.Content, personalityStyle)}
	case format.KindRecommendation:
		return styledWrap("📊 RECOMMENDATION: "+b.Content, width, tierStyle(b.Tier))
	case format.KindConfidence:
		return styledWrap("🎯 CONFIDENCE SCORE: "+b.Content, width, confidenceStyle)
	case format.KindSeparator:
		return []Line{textLine(strings.Repeat("─", width), separatorStyle)}
	case format.KindText:
		if len(b.Parts) > 0 {
			return partLines(b.Parts, width)
		}
		if opts.Markdown != nil {
			if lines, ok := opts.Markdown.Lines(b.Content, width); ok {
				return lines
			}
		}
		return styledWrap(b.Content, width, lipgloss.Style{})
	case format.KindStock, format.KindNews:
		if b.Preformatted {
			return preformatted(b.Content, width)
		}
		if len(b.Parts) > 0 {
			return partLines(b.Parts, width)
		}
		return styledWrap(b.Content, width, lipgloss.Style{})
	default:
		return styledWrap(b.Content, width, lipgloss.Style{})
	}
}

// partLines 把片段拼成行：换行符起新行，分节符输出空行。
func partLines(parts []format.Part, width int) []Line {
	var out []Line
	var current []format.Part
	flush := func(force bool) {
		if len(current) == 0 {
			if force {
				out = append(out, Line{})
			}
			return
		}
		for _, p := range current {
			out = append(out, partLine(p, width)...)
		}
		current = current[:0]
	}
	for _, p := range parts {
		switch p.Kind {
		case format.PartLineBreak:
			flush(true)
		case format.PartSectionBreak:
			flush(false)
			out = append(out, Line{})
		default:
			current = append(current, p)
		}
	}
	flush(false)
	return out
}

func partLine(p format.Part, width int) []Line {
	if p.Kind == format.PartNewsURL {
		return []Line{{Spans: []Span{{Text: "🌐 Read Full Article", Style: newsStyles[format.PartNewsURL], Link: p.Value}}}}
	}
	style, ok := newsStyles[p.Kind]
	if !ok {
		style = lipgloss.Style{}
	}
	return styledWrap(p.Text, width, style)
}

func styledWrap(text string, width int, style lipgloss.Style) []Line {
	lines := wrapText(text, width)
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, textLine(l, style))
	}
	return out
}

func preformatted(content string, width int) []Line {
	inner := width - 2
	if inner < 1 {
		inner = width
	}
	var out []Line
	for _, raw := range strings.Split(content, "\n") {
		for _, l := range wrapLinePreserveSpaces(raw, inner) {
			out = append(out, Line{Spans: []Span{
				{Text: "│ ", Style: preGutterStyle},
				{Text: l, Style: preStyle},
			}})
		}
	}
	return out
}
