package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultPersonality 是未配置时使用的顾问人格。
const DefaultPersonality = "Warren Buffett"

// Personalities 是聊天服务支持的顾问人格，顺序与服务端菜单一致。
var Personalities = []string{
	"Warren Buffett",
	"Peter Lynch",
	"Benjamin Graham",
	"George Soros",
	"Cathie Wood",
	"Charlie Munger",
	"Michael Burry",
	"Phil Fisher",
	"Rakesh Jhunjhunwala",
	"Stanley Druckenmiller",
	"Bill Ackman",
	"Aswath Damodaran",
}

// ResolvePersonality 把用户输入解析为已知人格：先精确匹配（忽略大小写），
// 再按子串匹配，最后取模糊匹配得分最高者。
func ResolvePersonality(query string) (string, bool) {
	q := strings.ToLower(strings.Join(strings.Fields(query), " "))
	if q == "" {
		return "", false
	}
	for _, p := range Personalities {
		if strings.ToLower(p) == q {
			return p, true
		}
	}
	var hits []string
	for _, p := range Personalities {
		if strings.Contains(strings.ToLower(p), q) {
			hits = append(hits, p)
		}
	}
	if len(hits) == 1 {
		return hits[0], true
	}
	if len(hits) > 1 {
		return "", false
	}
	matches := fuzzy.Find(q, lowered(Personalities))
	if len(matches) == 0 {
		return "", false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score > best.Score {
			best = m
		}
	}
	return Personalities[best.Index], true
}

func lowered(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func personalityList(current string) string {
	var b strings.Builder
	for i, p := range Personalities {
		if i > 0 {
			b.WriteByte('\n')
		}
		if p == current {
			b.WriteString("* ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(p)
	}
	return b.String()
}
