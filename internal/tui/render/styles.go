package render

import (
	"stock-chat/internal/format"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#7D56F4")

	userPrefixStyle = lipgloss.NewStyle().Faint(true).Bold(true)
	userIndentStyle = lipgloss.NewStyle().Faint(true)
	botPrefixStyle  = lipgloss.NewStyle().Foreground(accent)
	noticeStyle     = lipgloss.NewStyle().Faint(true).Italic(true)

	personalityStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	confidenceStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563eb"))
	separatorStyle   = lipgloss.NewStyle().Faint(true)
	preStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3"))
	preGutterStyle   = lipgloss.NewStyle().Faint(true)

	tierStyles = map[format.Tier]lipgloss.Style{
		format.TierBuy:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16a34a")),
		format.TierSell:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626")),
		format.TierHold:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d97706")),
		format.TierNeutral: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6b7280")),
	}

	newsStyles = map[format.PartKind]lipgloss.Style{
		format.PartNewsTitle:       lipgloss.NewStyle().Bold(true),
		format.PartNewsDate:        lipgloss.NewStyle().Faint(true),
		format.PartNewsSentiment:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0891b2")),
		format.PartNewsRelevance:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0891b2")),
		format.PartNewsSource:      lipgloss.NewStyle().Italic(true).Faint(true),
		format.PartNewsDescription: lipgloss.NewStyle(),
		format.PartNewsURL:         lipgloss.NewStyle().Foreground(accent).Underline(true),
	}
)

func tierStyle(t format.Tier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return tierStyles[format.TierNeutral]
}
