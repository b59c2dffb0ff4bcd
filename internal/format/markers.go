package format

import "strings"

// 交易建议的字面标记，均以 "**" 结束。
const (
	RecommendationMarker = "**RECOMMENDATION:"
	ConfidenceMarker     = "**CONFIDENCE SCORE:"
	markerClose          = "**"
)

// Marker 是一次标记匹配：Start/End 覆盖整个 "**TAG: value**" 片段。
type Marker struct {
	Start int
	End   int
	Value string
}

// FindMarker 返回 text 中第一个闭合的 tag 片段。tag 之后到下一个 '*' 之前的文本
// 为取值（至少一个字符），且必须紧跟 "**"；未闭合的出现会被跳过。
func FindMarker(text, tag string) (Marker, bool) {
	offset := 0
	for {
		idx := strings.Index(text[offset:], tag)
		if idx < 0 {
			return Marker{}, false
		}
		start := offset + idx
		valueStart := start + len(tag)
		stop := strings.IndexByte(text[valueStart:], '*')
		if stop > 0 && strings.HasPrefix(text[valueStart+stop:], markerClose) {
			end := valueStart + stop + len(markerClose)
			return Marker{
				Start: start,
				End:   end,
				Value: strings.TrimSpace(text[valueStart : valueStart+stop]),
			}, true
		}
		offset = valueStart
	}
}

// ClassifyTier 按 BUY > SELL > HOLD 的优先级对建议标签分级，大小写不敏感。
func ClassifyTier(label string) Tier {
	upper := strings.ToUpper(label)
	switch {
	case strings.Contains(upper, "BUY"):
		return TierBuy
	case strings.Contains(upper, "SELL"):
		return TierSell
	case strings.Contains(upper, "HOLD"):
		return TierHold
	default:
		return TierNeutral
	}
}

// tradingAdvice 是识别出的交易建议结构。
type tradingAdvice struct {
	Recommendation string
	Confidence     string
	Remainder      string
}

// parseTradingAdvice 要求两个标记都存在且闭合，否则返回 false。
func parseTradingAdvice(text string) (tradingAdvice, bool) {
	if !strings.Contains(text, RecommendationMarker) || !strings.Contains(text, ConfidenceMarker) {
		return tradingAdvice{}, false
	}
	rec, ok := FindMarker(text, RecommendationMarker)
	if !ok {
		return tradingAdvice{}, false
	}
	conf, ok := FindMarker(text, ConfidenceMarker)
	if !ok {
		return tradingAdvice{}, false
	}
	return tradingAdvice{
		Recommendation: rec.Value,
		Confidence:     conf.Value,
		Remainder:      strings.TrimSpace(cutSpans(text, rec, conf)),
	}, true
}

// cutSpans 删除两个不重叠的片段。
func cutSpans(text string, a, b Marker) string {
	if a.Start > b.Start {
		a, b = b, a
	}
	if b.Start < a.End {
		return text[:a.Start] + text[maxInt(a.End, b.End):]
	}
	return text[:a.Start] + text[a.End:b.Start] + text[b.End:]
}

// splitLines 把文本拆成文本片段与显式换行片段。
func splitLines(text string) []Part {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	parts := make([]Part, 0, len(lines)*2-1)
	for i, line := range lines {
		if i > 0 {
			parts = append(parts, Part{Kind: PartLineBreak})
		}
		if line != "" {
			parts = append(parts, Part{Kind: PartText, Text: line, Value: line})
		}
	}
	return parts
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
