package slash

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ActionKind 描述解析结果的处理类型。
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSubmitCommand
	ActionError
)

// Action 汇总 Slash 解析结果。
type Action struct {
	Kind    ActionKind
	Command Command
	Args    string
	Message string
}

// Parse 解析以 "/" 开头的输入。精确匹配优先，其次取唯一的模糊匹配（/pers -> /personality）。
func Parse(value string) Action {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "/") {
		return Action{Kind: ActionNone}
	}
	token, args, _ := strings.Cut(strings.TrimPrefix(value, "/"), " ")
	token = strings.ToLower(strings.TrimSpace(token))
	args = strings.TrimSpace(args)
	if token == "" {
		return Action{Kind: ActionError, Message: "type /help to list commands"}
	}

	for _, item := range Builtins() {
		if string(item.Command) == token {
			return Action{Kind: ActionSubmitCommand, Command: item.Command, Args: args}
		}
	}
	if token == string(CommandExit) {
		return Action{Kind: ActionSubmitCommand, Command: CommandQuit, Args: args}
	}

	matches := Match(token)
	if len(matches) == 1 || (len(matches) > 1 && strings.HasPrefix(string(matches[0]), token) && !strings.HasPrefix(string(matches[1]), token)) {
		return Action{Kind: ActionSubmitCommand, Command: matches[0], Args: args}
	}
	return Action{Kind: ActionError, Message: "unknown command /" + token + ", type /help to list commands"}
}

// Match 返回按得分排序的模糊匹配命令。
func Match(query string) []Command {
	items := Builtins()
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, string(it.Command))
	}
	results := fuzzy.Find(strings.ToLower(query), keys)
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Str < results[j].Str
		}
		return results[i].Score > results[j].Score
	})
	out := make([]Command, 0, len(results))
	for _, r := range results {
		out = append(out, Command(r.Str))
	}
	return out
}
