package format

import "strings"

// newsLabels 是新闻文本每行的前缀标记，顺序与服务端输出一致。
var newsLabels = []struct {
	glyph string
	kind  PartKind
}{
	{"📰", PartNewsTitle},
	{"📅", PartNewsDate},
	{"📊", PartNewsSentiment},
	{"📈", PartNewsRelevance},
	{"🔗", PartNewsSource},
	{"📝", PartNewsDescription},
	{"🌐", PartNewsURL},
}

// ClassifyNewsLine 识别带前缀标记的新闻行，未识别的行返回 PartText。
func ClassifyNewsLine(line string) Part {
	trimmed := strings.TrimLeft(line, " \t")
	for _, label := range newsLabels {
		prefix := label.glyph + " "
		if strings.HasPrefix(trimmed, prefix) {
			return Part{
				Kind:  label.kind,
				Text:  line,
				Value: strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)),
			}
		}
	}
	return Part{Kind: PartText, Text: line, Value: line}
}

// SplitNews 将新闻文本拆成片段：连续两个换行为分节符，单个换行为换行符，
// 其余每一行按前缀归类。
func SplitNews(text string) []Part {
	var parts []Part
	var line strings.Builder
	flush := func() {
		if line.Len() == 0 {
			return
		}
		parts = append(parts, ClassifyNewsLine(line.String()))
		line.Reset()
	}
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			line.WriteByte(text[i])
			continue
		}
		flush()
		if i+1 < len(text) && text[i+1] == '\n' {
			parts = append(parts, Part{Kind: PartSectionBreak})
			i++
			continue
		}
		parts = append(parts, Part{Kind: PartLineBreak})
	}
	flush()
	return parts
}
