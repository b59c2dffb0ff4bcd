package main

import (
	"fmt"
	"io"

	"stock-chat/internal/tui"
)

func personalitiesMain(out io.Writer) {
	for _, p := range tui.Personalities {
		_, _ = fmt.Fprintln(out, p)
	}
}
