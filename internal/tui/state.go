package tui

import "fmt"

// State 是 UI 的可变状态，由 Model 独占，事件处理函数通过它读写。
type State struct {
	Personality string
	// HistoryMode 为 true 时输入框显示的是历史记录而不是用户正在编辑的内容。
	HistoryMode bool
	Connected   bool
	// errorShown 保证一次连接内只展示一次连接错误提示。
	errorShown bool
	Status     string
}

// connectionLabel 返回 header 中的连接状态。
func (s State) connectionLabel() string {
	if s.Connected {
		return "● online"
	}
	return "○ offline"
}

func historyStatus(cursor, total int) string {
	return fmt.Sprintf("history %d/%d • esc to cancel", cursor+1, total)
}
