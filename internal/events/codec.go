package events

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Frame 的线上格式：{"event": "<name>", "data": <payload>}。

// Decode 解析一帧入站数据。
func Decode(frame []byte) (Event, error) {
	if !gjson.ValidBytes(frame) {
		return Event{}, ErrMalformedFrame
	}
	root := gjson.ParseBytes(frame)
	name := Name(root.Get("event").String())
	data := root.Get("data")

	ev := Event{Name: name, Received: time.Now()}
	switch name {
	case MessageFromServer:
		ev.Payload = decodeServerMessage(data)
	case PersonalityUpdated:
		ev.Payload = PersonalityUpdate{
			Personality: data.Get("personality").String(),
			Message:     data.Get("message").String(),
		}
	case TransportError:
		ev.Payload = ErrorNotice{Detail: textOf(data)}
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}
	return ev, nil
}

// decodeServerMessage 在缺少 message 字段时把整个载荷当作消息。
func decodeServerMessage(data gjson.Result) ServerMessage {
	msg := ServerMessage{Personality: data.Get("personality").String()}
	if m := data.Get("message"); m.Exists() && m.String() != "" {
		msg.Message = m.String()
	} else {
		msg.Message = textOf(data)
	}
	if extra := data.Get("data"); extra.IsObject() {
		msg.StockData = valueOf(extra.Get("stock_data"))
		msg.NewsData = valueOf(extra.Get("news_data"))
	}
	return msg
}

func textOf(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.String()
	case gjson.Null:
		return ""
	default:
		return r.Raw
	}
}

func valueOf(r gjson.Result) any {
	if !r.Exists() {
		return nil
	}
	return r.Value()
}

// EncodeUserMessage 构造 message_from_user 帧。
func EncodeUserMessage(text string) ([]byte, error) {
	return encode(MessageFromUser, "message", text)
}

// EncodePersonalityChange 构造 personality_change 帧。
func EncodePersonalityChange(personality string) ([]byte, error) {
	return encode(PersonalityChange, "personality", personality)
}

func encode(name Name, key, value string) ([]byte, error) {
	frame, err := sjson.SetBytes([]byte(`{}`), "event", string(name))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	frame, err = sjson.SetBytes(frame, "data."+key, value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return frame, nil
}
