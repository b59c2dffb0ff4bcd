package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func containsPlain(s, sub string) bool {
	return strings.Contains(ansi.Strip(s), sub)
}
