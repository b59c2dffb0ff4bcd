package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"stock-chat/internal/events"
	"stock-chat/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ClientIDHeader 携带本次连接的客户端标识。
const ClientIDHeader = "X-Client-ID"

const (
	defaultHandshakeTimeout = 10 * time.Second
	defaultWriteTimeout     = 5 * time.Second
)

// ErrClosed 表示连接已被关闭。
var ErrClosed = errors.New("gateway closed")

var log = logger.Named("gateway")

// Options 配置到聊天服务的连接。
type Options struct {
	URL              string
	Queue            *events.Queue
	Header           http.Header
	ClientID         string
	Wire             logger.WireLogger
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
}

// Client 是到聊天服务的 WebSocket 连接。发送为 fire-and-forget，不重试、不重连。
type Client struct {
	conn         *websocket.Conn
	queue        *events.Queue
	wire         logger.WireLogger
	url          string
	clientID     string
	writeTimeout time.Duration

	writeMu   sync.Mutex
	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

// Dial 建立连接并启动读循环，入站事件发布到 opts.Queue。
func Dial(ctx context.Context, opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, errors.New("gateway url is empty")
	}
	if opts.Queue == nil {
		opts.Queue = events.NewQueue(0)
	}
	if opts.Wire == nil {
		opts.Wire = logger.NoopWireLogger{}
	}
	if opts.ClientID == "" {
		opts.ClientID = uuid.NewString()
	}
	if opts.HandshakeTimeout <= 0 {
		opts.HandshakeTimeout = defaultHandshakeTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}

	header := http.Header{}
	for k, v := range opts.Header {
		header[k] = append([]string(nil), v...)
	}
	header.Set(ClientIDHeader, opts.ClientID)

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: opts.HandshakeTimeout,
	}
	conn, resp, err := dialer.DialContext(ctx, opts.URL, header)
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("%w (status %d)", err, resp.StatusCode)
		}
		opts.Wire.Error("dial", err)
		return nil, fmt.Errorf("dial %s: %w", opts.URL, err)
	}

	c := &Client{
		conn:         conn,
		queue:        opts.Queue,
		wire:         opts.Wire,
		url:          opts.URL,
		clientID:     opts.ClientID,
		writeTimeout: opts.WriteTimeout,
		done:         make(chan struct{}),
	}
	log.WithField("client_id", c.clientID).Infof("connected to %s", c.url)
	c.publish(events.Event{Name: events.Connected, Payload: events.ConnectionState{URL: c.url}})
	go c.readLoop()
	return c, nil
}

// ClientID 返回本次连接使用的客户端标识。
func (c *Client) ClientID() string {
	return c.clientID
}

// Done 在读循环退出后关闭。
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// SendMessage 发送 message_from_user。
func (c *Client) SendMessage(ctx context.Context, text string) error {
	frame, err := events.EncodeUserMessage(text)
	if err != nil {
		return err
	}
	return c.write(ctx, events.MessageFromUser, frame)
}

// ChangePersonality 发送 personality_change。
func (c *Client) ChangePersonality(ctx context.Context, personality string) error {
	frame, err := events.EncodePersonalityChange(personality)
	if err != nil {
		return err
	}
	return c.write(ctx, events.PersonalityChange, frame)
}

func (c *Client) write(ctx context.Context, name events.Name, frame []byte) error {
	if c == nil || c.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline := time.Now().Add(c.writeTimeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	_ = c.conn.SetWriteDeadline(deadline)
	if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		c.wire.Error("write", err)
		return fmt.Errorf("send %s: %w", name, err)
	}
	c.wire.Sent(string(name), frame)
	return nil
}

// Close 关闭连接；读循环退出后会发布一次 disconnect。
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.conn.Close()
	})
	return err
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.handleReadError(err)
			return
		}
		ev, err := events.Decode(data)
		if err != nil {
			c.wire.Received("unknown", data)
			log.WithError(err).Warn("dropping inbound frame")
			continue
		}
		c.wire.Received(string(ev.Name), data)
		c.publish(ev)
	}
}

func (c *Client) handleReadError(err error) {
	reason := err.Error()
	switch {
	case c.closed.Load():
		reason = "client closed"
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		log.Infof("server closed connection: %v", err)
	default:
		c.wire.Error("read", err)
		c.publish(events.Event{Name: events.TransportError, Payload: events.ErrorNotice{Detail: reason}})
	}
	c.publish(events.Event{Name: events.Disconnected, Payload: events.ConnectionState{URL: c.url, Reason: reason}})
}

func (c *Client) publish(ev events.Event) {
	if ev.Received.IsZero() {
		ev.Received = time.Now()
	}
	if err := c.queue.Publish(context.Background(), ev); err != nil {
		log.WithError(err).WithField("event", ev.Name).Warn("publish failed")
	}
}
