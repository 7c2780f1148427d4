package tui

import (
	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/theme"
)

// hit is a clickable region. Page hits are in page coordinates; navbar,
// menu and overlay hits are in screen coordinates.
type hit struct {
	rect   motion.Rect
	target target
	link   content.Link
	magnet string
}

func linkHit(link content.Link) hit {
	return hit{target: targetLink, link: link}
}

// hitAt returns the last hit containing (x, y), so later layers win.
func hitAt(hits []hit, x, y int) (hit, bool) {
	for i := len(hits) - 1; i >= 0; i-- {
		if hits[i].rect.Contains(x, y) {
			return hits[i], true
		}
	}
	return hit{}, false
}

// pageLayout is the measured page: where each section starts and what can
// be clicked. It only changes on resize or theme change.
type pageLayout struct {
	width  int
	height int
	mobile bool
	tops   map[content.Section]int
	hits   []hit
	total  int
}

func (l *pageLayout) top(section content.Section) int {
	return l.tops[section]
}

// frame is everything one render pass needs. Styles are derived from the
// active theme once per pass.
type frame struct {
	m      model
	st     theme.Styles
	tokens theme.Tokens
	mobile bool
	width  int
	height int
}

func (m model) frame() frame {
	def := m.selection.Current()
	return frame{
		m:      m,
		st:     theme.BuildStyles(def),
		tokens: def.Tokens,
		mobile: m.mobile(),
		width:  m.width,
		height: m.pageHeight(),
	}
}

type sectionRenderer struct {
	id     content.Section
	render func(top int) *canvas
}

// page renders every section top to bottom.
func (f frame) page() ([]string, pageLayout) {
	lay := pageLayout{
		width:  f.width,
		height: f.height,
		mobile: f.mobile,
		tops:   make(map[content.Section]int),
	}
	sections := []sectionRenderer{
		{content.SectionHero, f.hero},
		{content.SectionWork, f.projects},
		{content.SectionProtocol, f.philosophy},
		{content.SectionRoot, f.root},
		{content.SectionFooter, f.footer},
	}
	var lines []string
	for _, s := range sections {
		top := len(lines)
		c := s.render(top)
		lay.tops[s.id] = top
		for _, h := range c.hits {
			h.rect.Y += top
			lay.hits = append(lay.hits, h)
		}
		lines = append(lines, c.lines...)
	}
	lay.total = len(lines)
	return lines, lay
}

// progress is the scroll progress of a section occupying [top, top+h).
func (f frame) progress(top, h int) float64 {
	return motion.ScrollProgress(f.m.page.Offset, f.height, top, h)
}

// pagePointer returns the pointer in page coordinates.
func (f frame) pagePointer() (int, int, bool) {
	p := f.m.fx.pointer
	if !p.Present {
		return 0, 0, false
	}
	x, y := p.Cell()
	return x, y + f.m.page.Offset, true
}

// hovered reports whether the pointer is over r, given in page coordinates.
func (f frame) hovered(r motion.Rect) bool {
	x, y, ok := f.pagePointer()
	return ok && r.Contains(x, y)
}

// margin is the horizontal page gutter.
func (f frame) margin() int {
	if f.mobile {
		return 2
	}
	return max(4, f.width/12)
}
