// Package content holds the static copy and records rendered by the page.
package content

import "github.com/ellen-studio/folio/internal/theme"

// Section identifies an in-page anchor.
type Section string

const (
	SectionHero     Section = "hero"
	SectionWork     Section = "repositories"
	SectionProtocol Section = "protocol"
	SectionRoot     Section = "root"
	SectionFooter   Section = "footer"
)

// Action is what activating a link does.
type Action int

const (
	ActionNone Action = iota
	ActionScroll
	ActionTop
	ActionOpenAbout
	ActionOpenInspirations
)

// Link is a labelled navigation target.
type Link struct {
	Label   string
	Action  Action
	Section Section
}

// Project is one showcased repository.
type Project struct {
	Title       string
	Tags        []string
	Description string
}

// Inspiration is one card of the Inspirations overlay.
type Inspiration struct {
	Name        string
	Legacy      string
	Achievement string
	Color       theme.ColorToken
}

// Column is a titled group of footer links.
type Column struct {
	Title string
	Links []Link
}
