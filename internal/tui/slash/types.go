package slash

import "strings"

// Command 表示内置斜杠命令的标识符。
type Command string

const (
	CommandPersonality   Command = "personality"
	CommandPersonalities Command = "personalities"
	CommandClear         Command = "clear"
	CommandCopy          Command = "copy"
	CommandHelp          Command = "help"
	CommandQuit          Command = "quit"
	CommandExit          Command = "exit"
)

// Item 代表一条内置命令。
type Item struct {
	Command     Command
	Args        string
	Description string
}

// DisplayName 返回带前缀斜杠的展示名称。
func (i Item) DisplayName() string {
	name := "/" + string(i.Command)
	if i.Args != "" {
		name += " " + i.Args
	}
	return name
}

// Builtins 返回内置命令，顺序即帮助中的展示顺序。
func Builtins() []Item {
	return []Item{
		{Command: CommandPersonality, Args: "<name>", Description: "switch advisor personality"},
		{Command: CommandPersonalities, Description: "list available personalities"},
		{Command: CommandClear, Description: "clear the conversation"},
		{Command: CommandCopy, Description: "copy the last reply to the clipboard"},
		{Command: CommandHelp, Description: "show commands"},
		{Command: CommandQuit, Description: "exit"},
	}
}

// HelpText 渲染命令列表。
func HelpText() string {
	items := Builtins()
	width := 0
	for _, it := range items {
		if n := len(it.DisplayName()); n > width {
			width = n
		}
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		name := it.DisplayName()
		lines = append(lines, name+strings.Repeat(" ", width-len(name)+2)+it.Description)
	}
	return strings.Join(lines, "\n")
}
