package events

import (
	"errors"
	"time"
)

// Name 是聊天服务的事件名称。
type Name string

const (
	// 服务端 -> 客户端
	MessageFromServer  Name = "message_from_server"
	PersonalityUpdated Name = "personality_updated"
	TransportError     Name = "error"
	// 由 gateway 在本地合成
	Connected    Name = "connect"
	Disconnected Name = "disconnect"

	// 客户端 -> 服务端
	MessageFromUser   Name = "message_from_user"
	PersonalityChange Name = "personality_change"
)

var (
	// ErrUnknownEvent 表示帧中的事件名不在支持范围内。
	ErrUnknownEvent = errors.New("unknown event")
	// ErrMalformedFrame 表示帧不是合法 JSON。
	ErrMalformedFrame = errors.New("malformed frame")
)

// Event 是 EQ 中传递的唯一消息格式，Payload 的具体结构由 Name 决定。
type Event struct {
	Name     Name
	Received time.Time
	Payload  any
}

// ServerMessage 是 message_from_server 的载荷。
// Personality 为空时由 UI 使用当前人格补齐；StockData/NewsData 为 string 或解码后的 JSON 值。
type ServerMessage struct {
	Message     string
	Personality string
	StockData   any
	NewsData    any
}

// PersonalityUpdate 是 personality_updated 的载荷。
type PersonalityUpdate struct {
	Personality string
	Message     string
}

// ErrorNotice 是 error 事件的载荷。
type ErrorNotice struct {
	Detail string
}

// ConnectionState 是 connect/disconnect 的载荷。
type ConnectionState struct {
	URL    string
	Reason string
}
