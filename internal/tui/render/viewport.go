package render

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Viewport 包装 bubbles viewport：内容变化时跳到最新消息，手动滚动由按键驱动。
type Viewport struct {
	viewport.Model
	lastLines []string
}

// NewViewport 创建视口。
func NewViewport(width, height int) Viewport {
	return Viewport{Model: viewport.New(width, height)}
}

// Resize 更新宽高。
func (v *Viewport) Resize(width, height int) {
	if v == nil {
		return
	}
	if v.Width != width {
		v.lastLines = nil
	}
	v.Width = width
	v.Height = height
}

// HandleUpdate 代理 bubbles 的 Update（鼠标滚轮等）。
func (v *Viewport) HandleUpdate(msg tea.Msg) tea.Cmd {
	if v == nil {
		return nil
	}
	var cmd tea.Cmd
	v.Model, cmd = v.Model.Update(msg)
	return cmd
}

// SetLines 更新内容；内容有变化时自动滚动到底部，返回是否有变化。
func (v *Viewport) SetLines(lines []string) bool {
	if v == nil {
		return false
	}
	if v.lastLines != nil && slices.Equal(lines, v.lastLines) {
		return false
	}
	v.lastLines = append([]string{}, lines...)
	v.SetContent(strings.Join(lines, "\n"))
	v.GotoBottom()
	return true
}

// ScrollPageDown 下翻一页。
func (v *Viewport) ScrollPageDown() {
	if v != nil {
		v.ViewDown()
	}
}

// ScrollPageUp 上翻一页。
func (v *Viewport) ScrollPageUp() {
	if v != nil {
		v.ViewUp()
	}
}
