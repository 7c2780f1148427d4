package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ellen-studio/folio/internal/theme"
)

// BadgeKind selects a badge presentation.
type BadgeKind int

const (
	// BadgeSolid is the dark pill used for section kickers.
	BadgeSolid BadgeKind = iota
	// BadgeTag is a compact inverted label.
	BadgeTag
	// BadgeLive is the collapsed navbar's indicator.
	BadgeLive
	// BadgeStatus is a green pulse followed by a message.
	BadgeStatus
)

const statusGreen = "#4ADE80"

// RenderBadge renders text as the given kind of badge.
func RenderBadge(styleSet theme.Styles, kind BadgeKind, text string) string {
	icon, label, style := badgeDescriptor(styleSet, kind, text)
	if icon == "" {
		return style.Render(label)
	}
	return fmt.Sprintf("%s %s", icon, style.Render(label))
}

// RenderTags renders tags side by side.
func RenderTags(styleSet theme.Styles, tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, RenderBadge(styleSet, BadgeTag, tag))
	}
	return strings.Join(parts, " ")
}

func badgeDescriptor(styleSet theme.Styles, kind BadgeKind, text string) (string, string, lipgloss.Style) {
	switch kind {
	case BadgeTag:
		return "", strings.ToUpper(text), styleSet.Tag
	case BadgeLive:
		return styleSet.Accent.Render("■"), strings.ToUpper(text), styleSet.Text.Bold(true)
	case BadgeStatus:
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(statusGreen)).Render("●")
		return dot, text, styleSet.Accent
	default:
		return "", strings.ToUpper(text), styleSet.Badge
	}
}
