package main

import (
	"fmt"
	"strings"
)

type rootArgs struct {
	overrides []string
}

// parseRootArgs 只消费出现在子命令之前的 -c key=value，其余参数原样交给子命令。
func parseRootArgs(args []string) (rootArgs, []string, error) {
	var overrides stringSlice
	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "--c":
			if i+1 >= len(args) {
				return rootArgs{}, nil, fmt.Errorf("flag needs an argument: %s", arg)
			}
			_ = overrides.Set(args[i+1])
			i += 2
			continue
		case strings.HasPrefix(arg, "-c=") || strings.HasPrefix(arg, "--c="):
			_, v, _ := strings.Cut(arg, "=")
			_ = overrides.Set(v)
			i++
			continue
		}
		break
	}
	return rootArgs{overrides: append([]string{}, overrides...)}, args[i:], nil
}

func prependOverrides(root []string, overrides []string) []string {
	merged := append([]string{}, root...)
	return append(merged, overrides...)
}
