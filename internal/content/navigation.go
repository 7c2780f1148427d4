package content

// Brand is the name on the compact navbar and the footer signature.
const Brand = "Ellen"

// CollapsedLabel is shown by the navbar once the page has scrolled.
const CollapsedLabel = "SYS.LIVE"

// NavItems returns the navbar links. The last entry is set apart on the
// right of the full navbar.
func NavItems() []Link {
	return []Link{
		{Label: "Work", Action: ActionScroll, Section: SectionWork},
		{Label: "Protocol", Action: ActionScroll, Section: SectionProtocol},
		{Label: "Root", Action: ActionScroll, Section: SectionRoot},
		{Label: "Inspirations", Action: ActionOpenInspirations},
		{Label: "About", Action: ActionOpenAbout},
	}
}

// FooterColumns returns the footer's link columns.
func FooterColumns() []Column {
	return []Column{
		{
			Title: "Directories",
			Links: []Link{
				{Label: "Work", Action: ActionScroll, Section: SectionWork},
				{Label: "History"},
				{Label: "Inspirations", Action: ActionOpenInspirations},
				{Label: "About", Action: ActionOpenAbout},
			},
		},
		{
			Title: "Nodes",
			Links: []Link{
				{Label: "GitHub"},
				{Label: "NPM"},
				{Label: "LinkedIn"},
			},
		},
	}
}
