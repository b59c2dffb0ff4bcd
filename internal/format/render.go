package format

import (
	"fmt"

	"stock-chat/internal/logger"
)

var log = logger.Named("format")

// Render 把消息转成有序的 Block 序列，顺序固定为：
// personality-label, [recommendation, confidence, separator,] text, stock, news。
//
// Render 不会 panic：附件失败只降级该附件；其余失败降级为单个清理过的 text block。
func Render(msg Message) (blocks []Block) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).Warn("render failed, falling back to raw text")
			blocks = []Block{{Kind: KindText, Content: Sanitize(msg.Text)}}
		}
	}()

	if msg.Sender == SenderBot && msg.Personality != "" {
		blocks = append(blocks, Block{Kind: KindPersonality, Content: Sanitize(msg.Personality)})
	}

	text := Sanitize(msg.Text)
	if advice, ok := parseTradingAdvice(text); ok && msg.Sender == SenderBot {
		blocks = append(blocks, tradingBlocks(advice)...)
	} else {
		blocks = append(blocks, Block{Kind: KindText, Content: text})
	}

	if !isEmptyPayload(msg.Attachments.Stock) {
		blocks = append(blocks, guarded(KindStock, msg.Attachments.Stock, stockBlock))
	}
	if !isEmptyPayload(msg.Attachments.News) {
		blocks = append(blocks, guarded(KindNews, msg.Attachments.News, newsBlock))
	}
	return blocks
}

func tradingBlocks(advice tradingAdvice) []Block {
	return []Block{
		{Kind: KindRecommendation, Content: advice.Recommendation, Tier: ClassifyTier(advice.Recommendation)},
		{Kind: KindConfidence, Content: advice.Confidence},
		{Kind: KindSeparator},
		{Kind: KindText, Content: advice.Remainder, Parts: splitLines(advice.Remainder)},
	}
}

func stockBlock(v any) Block {
	if s, ok := v.(string); ok {
		return Block{Kind: KindStock, Content: Sanitize(s)}
	}
	return Block{Kind: KindStock, Content: Sanitize(DumpPayload(v)), Preformatted: true}
}

func newsBlock(v any) Block {
	if s, ok := v.(string); ok {
		text := Sanitize(s)
		return Block{Kind: KindNews, Content: text, Parts: SplitNews(text)}
	}
	return Block{Kind: KindNews, Content: Sanitize(DumpPayload(v)), Preformatted: true}
}

// guarded 构建附件 block；构建过程 panic 时退回 fmt 的 %+v 预格式化输出。
func guarded(kind Kind, v any, build func(any) Block) (b Block) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).WithField("kind", string(kind)).Warn("attachment render failed")
			b = Block{Kind: kind, Content: Sanitize(fmt.Sprintf("%+v", v)), Preformatted: true}
		}
	}()
	return build(v)
}
