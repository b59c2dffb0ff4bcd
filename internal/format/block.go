package format

// Sender 标识消息方向。
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message 是一次待渲染的入站或出站消息，渲染后不再修改。
type Message struct {
	Text        string
	Sender      Sender
	Personality string
	Attachments Attachments
}

// Attachments 携带可选的结构化数据。每个字段可以是 string（文本）、
// map/slice（结构化记录）或其他任意值（走兜底序列化）。nil 与 "" 视为缺省。
type Attachments struct {
	Stock any
	News  any
}

// Kind 是 Block 的类型。
type Kind string

const (
	KindPersonality    Kind = "personality-label"
	KindText           Kind = "text"
	KindRecommendation Kind = "recommendation"
	KindConfidence     Kind = "confidence"
	KindSeparator      Kind = "separator"
	KindStock          Kind = "stock"
	KindNews           Kind = "news"
)

// Tier 是交易建议的分级。
type Tier string

const (
	TierBuy     Tier = "buy"
	TierSell    Tier = "sell"
	TierHold    Tier = "hold"
	TierNeutral Tier = "neutral"
)

// PartKind 标记 Block 内部片段。
type PartKind string

const (
	PartText         PartKind = "text"
	PartLineBreak    PartKind = "line-break"
	PartSectionBreak PartKind = "section-break"

	PartNewsTitle       PartKind = "title"
	PartNewsDate        PartKind = "date"
	PartNewsSentiment   PartKind = "sentiment"
	PartNewsRelevance   PartKind = "relevance"
	PartNewsSource      PartKind = "source"
	PartNewsDescription PartKind = "description"
	PartNewsURL         PartKind = "url"
)

// Part 是 Block 的一个片段。Text 为原始行，Value 为去掉标签前缀后的内容。
type Part struct {
	Kind  PartKind
	Text  string
	Value string
}

// Block 是交给渲染端的最小单元，内容均已清理过终端控制序列。
//
// Content 总是可直接显示的文本；Parts 非空时渲染端应按片段展示。
// Preformatted 表示 Content 为结构化数据的缩进转储，需保留空白。
type Block struct {
	Kind         Kind
	Content      string
	Tier         Tier
	Parts        []Part
	Preformatted bool
}
