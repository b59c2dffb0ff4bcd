package history

import "strings"

// DefaultCapacity 是输入历史的默认容量。
const DefaultCapacity = 10

// Direction 是历史浏览方向。
type Direction int

const (
	Up Direction = iota + 1
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Navigator 负责输入框历史（上下箭头）。
// entries 按最新在前排列；cursor == -1 表示未在浏览历史。
type Navigator struct {
	entries  []string
	cursor   int
	capacity int
}

// New 创建容量为 capacity 的 Navigator，capacity <= 0 时使用 DefaultCapacity。
func New(capacity int) *Navigator {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Navigator{cursor: -1, capacity: capacity}
}

// Record 记录一次提交。空白输入与紧邻的重复输入不入列；无论是否写入都会退出浏览。
func (n *Navigator) Record(entry string) {
	n.cursor = -1
	if strings.TrimSpace(entry) == "" {
		return
	}
	if len(n.entries) > 0 && n.entries[0] == entry {
		return
	}
	n.entries = append(n.entries, "")
	copy(n.entries[1:], n.entries)
	n.entries[0] = entry
	if len(n.entries) > n.capacity {
		n.entries = n.entries[:n.capacity]
	}
}

// Navigate 移动游标并返回应显示的文本。ok 为 false 时状态不变，调用方保留当前显示。
// 只有在最新一条上按 Down 才会退出浏览并返回空串。
func (n *Navigator) Navigate(dir Direction) (string, bool) {
	switch dir {
	case Up:
		if n.cursor+1 >= len(n.entries) {
			return "", false
		}
		n.cursor++
		return n.entries[n.cursor], true
	case Down:
		switch {
		case n.cursor > 0:
			n.cursor--
			return n.entries[n.cursor], true
		case n.cursor == 0:
			n.cursor = -1
			return "", true
		}
	}
	return "", false
}

// Cancel 退出浏览（Esc 或手动编辑时调用）。
func (n *Navigator) Cancel() {
	n.cursor = -1
}

// Browsing 报告是否处于历史浏览状态。
func (n *Navigator) Browsing() bool {
	return n.cursor >= 0
}

// Cursor 返回当前游标，-1 表示未浏览。
func (n *Navigator) Cursor() int {
	return n.cursor
}

func (n *Navigator) Len() int {
	return len(n.entries)
}

// Entries returns a copy of the buffer, most recent first.
func (n *Navigator) Entries() []string {
	return append([]string(nil), n.entries...)
}
