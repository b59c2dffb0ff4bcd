package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock-chat/internal/events"
	"stock-chat/internal/format"
	"stock-chat/internal/history"
	"stock-chat/internal/tui/render"
	"stock-chat/internal/tui/slash"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConnectionErrorText 是传输错误时展示的提示。
const ConnectionErrorText = "Connection error. Please reconnect."

const sendTimeout = 5 * time.Second

// Sender 抽象到聊天服务的出站能力，避免 TUI 与 gateway 实现耦合。
type Sender interface {
	SendMessage(ctx context.Context, text string) error
	ChangePersonality(ctx context.Context, personality string) error
}

type Options struct {
	Personality string
	HistorySize int
	Markdown    bool
	// Sender 为 nil 时以离线模式运行，发送会提示连接错误。
	Sender Sender
	Events <-chan events.Event
	// SavePersonality 在切换人格后被调用，用于持久化配置。
	SavePersonality func(string) error
	// Clipboard 默认使用系统剪贴板。
	Clipboard      func(string) error
	CopyableOutput bool
	// Notice 在启动时展示（例如连接失败的原因）。
	Notice string
}

type eventMsg struct {
	Event events.Event
}

type eventsClosedMsg struct{}

type sendResultMsg struct {
	Op  string
	Err error
}

type Model struct {
	textarea        textarea.Model
	viewport        render.Viewport
	transcript      *render.Transcript
	history         *history.Navigator
	state           State
	sender          Sender
	eventsSub       <-chan events.Event
	dispatcher      events.Dispatcher
	savePersonality func(string) error
	clipboard       func(string) error
	width           int
	height          int
	transcriptDirty bool
}

func New(opts Options) *Model {
	ti := textarea.New()
	ti.Placeholder = "Ask about a stock, or /help"
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.SetWidth(90)
	ti.SetHeight(1)
	ti.ShowLineNumbers = false
	ti.KeyMap.InsertNewline.SetEnabled(false)
	ti.Focus()

	blockOpts := render.BlockOptions{}
	if opts.Markdown {
		blockOpts.Markdown = render.NewMarkdownRenderer("")
	}

	personality := DefaultPersonality
	if p, ok := ResolvePersonality(opts.Personality); ok {
		personality = p
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	m := &Model{
		textarea:        ti,
		viewport:        render.NewViewport(90, 12),
		transcript:      render.NewTranscript(90, blockOpts),
		history:         history.New(opts.HistorySize),
		state:           State{Personality: personality},
		sender:          opts.Sender,
		eventsSub:       opts.Events,
		savePersonality: opts.SavePersonality,
		clipboard:       clip,
		width:           90,
		height:          24,
		transcriptDirty: true,
	}
	m.dispatcher = events.Dispatcher{
		OnServerMessage:      m.onServerMessage,
		OnPersonalityUpdated: m.onPersonalityUpdated,
		OnError:              m.onTransportError,
		OnConnected:          m.onConnected,
		OnDisconnected:       m.onDisconnected,
	}
	if notice := strings.TrimSpace(opts.Notice); notice != "" {
		m.transcript.AppendNotice(notice)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.listenEvents())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.finish(cmds...)
	case eventMsg:
		m.dispatcher.Dispatch(msg.Event)
		m.refreshTranscript()
		cmds = append(cmds, m.listenEvents())
		return m.finish(cmds...)
	case eventsClosedMsg:
		m.eventsSub = nil
		m.state.Connected = false
		return m.finish(cmds...)
	case sendResultMsg:
		if msg.Err != nil {
			log.WithError(msg.Err).WithField("op", msg.Op).Warn("send failed")
			if !m.state.errorShown {
				m.state.errorShown = true
				m.transcript.AppendNotice(ConnectionErrorText)
				m.refreshTranscript()
			}
		}
		return m.finish(cmds...)
	case tea.MouseMsg:
		if cmd := m.viewport.HandleUpdate(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m.finish(cmds...)
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m.finish(cmds...)
		}
	}

	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	// 浏览历史时任何编辑都会退出浏览，保留当前文本。
	if m.state.HistoryMode && m.textarea.Value() != before {
		m.cancelHistory()
	}
	return m.finish(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit, true
	case tea.KeyPgUp:
		m.viewport.ScrollPageUp()
		return nil, true
	case tea.KeyPgDown:
		m.viewport.ScrollPageDown()
		return nil, true
	case tea.KeyCtrlY:
		m.copyLastReply()
		return nil, true
	case tea.KeyEsc:
		if m.state.HistoryMode {
			m.cancelHistory()
		}
		return nil, true
	case tea.KeyUp:
		m.navigate(history.Up)
		return nil, true
	case tea.KeyDown:
		m.navigate(history.Down)
		return nil, true
	case tea.KeyEnter:
		if msg.Alt {
			return nil, true
		}
		return m.submit(), true
	}
	return nil, false
}

func (m *Model) navigate(dir history.Direction) {
	text, ok := m.history.Navigate(dir)
	if !ok {
		return
	}
	m.textarea.SetValue(text)
	m.textarea.CursorEnd()
	m.state.HistoryMode = m.history.Browsing()
}

func (m *Model) cancelHistory() {
	m.history.Cancel()
	m.state.HistoryMode = false
}

func (m *Model) submit() tea.Cmd {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return nil
	}
	m.textarea.Reset()
	m.state.HistoryMode = false
	m.state.Status = ""

	if action := slash.Parse(input); action.Kind != slash.ActionNone {
		m.history.Cancel()
		return m.runSlash(action)
	}

	m.history.Record(input)
	m.appendUser(input)
	return m.send("message", func(ctx context.Context, s Sender) error {
		return s.SendMessage(ctx, input)
	})
}

func (m *Model) runSlash(action slash.Action) tea.Cmd {
	if action.Kind == slash.ActionError {
		m.state.Status = action.Message
		return nil
	}
	switch action.Command {
	case slash.CommandPersonality:
		if action.Args == "" {
			m.state.Status = "usage: /personality <name>"
			return nil
		}
		name, ok := ResolvePersonality(action.Args)
		if !ok {
			m.state.Status = fmt.Sprintf("unknown personality %q, see /personalities", action.Args)
			return nil
		}
		return m.SelectPersonality(name)
	case slash.CommandPersonalities:
		m.transcript.AppendNotice(personalityList(m.state.Personality))
		m.refreshTranscript()
	case slash.CommandClear:
		m.transcript.Reset()
		m.refreshTranscript()
	case slash.CommandCopy:
		m.copyLastReply()
	case slash.CommandHelp:
		m.transcript.AppendNotice(slash.HelpText())
		m.refreshTranscript()
	case slash.CommandQuit, slash.CommandExit:
		return tea.Quit
	}
	return nil
}

// SelectPersonality 切换顾问人格：通知服务端，并把切换记录为一条用户消息。
func (m *Model) SelectPersonality(name string) tea.Cmd {
	m.state.Personality = name
	text := "Change personality to " + name
	m.history.Record(text)
	m.appendUser(text)

	cmds := []tea.Cmd{m.send("personality", func(ctx context.Context, s Sender) error {
		return s.ChangePersonality(ctx, name)
	})}
	if m.savePersonality != nil {
		save := m.savePersonality
		cmds = append(cmds, func() tea.Msg {
			if err := save(name); err != nil {
				log.WithError(err).Warn("persist personality failed")
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) send(op string, fn func(context.Context, Sender) error) tea.Cmd {
	sender := m.sender
	return func() tea.Msg {
		if sender == nil {
			return sendResultMsg{Op: op, Err: fmt.Errorf("%s: not connected", op)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		return sendResultMsg{Op: op, Err: fn(ctx, sender)}
	}
}

func (m *Model) appendUser(text string) {
	blocks := format.Render(format.Message{Text: text, Sender: format.SenderUser})
	m.transcript.Append(render.EntryUser, text, blocks)
	m.refreshTranscript()
}

func (m *Model) copyLastReply() {
	text, ok := m.transcript.LastBotText()
	if !ok {
		m.state.Status = "nothing to copy yet"
		return
	}
	if err := m.clipboard(text); err != nil {
		log.WithError(err).Warn("clipboard write failed")
		m.state.Status = "copy failed: " + err.Error()
		return
	}
	m.state.Status = "copied last reply to clipboard"
}

func (m *Model) onServerMessage(p events.ServerMessage) {
	personality := p.Personality
	if personality == "" {
		personality = m.state.Personality
	}
	blocks := format.Render(format.Message{
		Text:        p.Message,
		Sender:      format.SenderBot,
		Personality: personality,
		Attachments: format.Attachments{Stock: p.StockData, News: p.NewsData},
	})
	m.transcript.Append(render.EntryBot, p.Message, blocks)
}

func (m *Model) onPersonalityUpdated(p events.PersonalityUpdate) {
	// 名称会直接写进 header，先去掉控制序列并压成单行。
	if name := strings.Join(strings.Fields(format.Sanitize(p.Personality)), " "); name != "" {
		m.state.Personality = name
	}
	if strings.TrimSpace(p.Message) == "" {
		return
	}
	blocks := format.Render(format.Message{Text: p.Message, Sender: format.SenderBot, Personality: m.state.Personality})
	m.transcript.Append(render.EntryBot, p.Message, blocks)
}

func (m *Model) onTransportError(p events.ErrorNotice) {
	log.WithField("detail", p.Detail).Warn("transport error")
	m.state.errorShown = true
	m.transcript.AppendNotice(ConnectionErrorText)
}

func (m *Model) onConnected(p events.ConnectionState) {
	log.Infof("connected to %s", p.URL)
	m.state.Connected = true
	m.state.errorShown = false
}

func (m *Model) onDisconnected(p events.ConnectionState) {
	log.WithField("reason", p.Reason).Info("disconnected")
	m.state.Connected = false
}

func (m *Model) listenEvents() tea.Cmd {
	if m.eventsSub == nil {
		return nil
	}
	sub := m.eventsSub
	return func() tea.Msg {
		ev, ok := <-sub
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{Event: ev}
	}
}

func (m *Model) finish(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.flushTranscript()
	return m, tea.Batch(cmds...)
}

func (m *Model) refreshTranscript() {
	m.transcriptDirty = true
}

func (m *Model) flushTranscript() {
	if !m.transcriptDirty {
		return
	}
	m.transcriptDirty = false
	lines := render.LinesToStrings(m.transcript.Lines())
	if len(lines) == 0 {
		lines = []string{welcomeText}
	}
	m.viewport.SetLines(lines)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	headerHeight := lipgloss.Height(m.renderHeader())
	composerHeight := m.textarea.Height() + 2 // border
	statusHeight := 1
	viewHeight := height - headerHeight - composerHeight - statusHeight
	if viewHeight < 3 {
		viewHeight = 3
	}
	m.viewport.Resize(width, viewHeight)
	m.transcript.SetWidth(width)
	m.textarea.SetWidth(maxInt(10, width-4))
	m.refreshTranscript()
}

// State returns a copy of the UI state.
func (m *Model) State() State {
	return m.state
}

// Transcript exposes the rendered conversation (read-only use).
func (m *Model) Transcript() *render.Transcript {
	return m.transcript
}

// History returns the input history, most recent first.
func (m *Model) History() []string {
	return m.history.Entries()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
