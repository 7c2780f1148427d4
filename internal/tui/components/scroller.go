package components

import (
	"fmt"
	"strings"

	"github.com/ellen-studio/folio/internal/theme"
)

// Scroller tracks a vertical window over content measured in lines.
type Scroller struct {
	Offset int
	Height int
	Total  int
}

// NewScroller creates a scroller with the given window height.
func NewScroller(height int) *Scroller {
	return &Scroller{Height: height}
}

// SetTotal sets the content length.
func (s *Scroller) SetTotal(total int) {
	s.Total = total
	s.clampScroll()
}

// SetHeight sets the window height.
func (s *Scroller) SetHeight(height int) {
	s.Height = height
	s.clampScroll()
}

// ScrollUp scrolls the view up by n lines.
func (s *Scroller) ScrollUp(n int) {
	s.Offset -= n
	s.clampScroll()
}

// ScrollDown scrolls the view down by n lines.
func (s *Scroller) ScrollDown(n int) {
	s.Offset += n
	s.clampScroll()
}

// PageUp scrolls up by one window, keeping a line of context.
func (s *Scroller) PageUp() {
	s.ScrollUp(s.pageStep())
}

// PageDown scrolls down by one window, keeping a line of context.
func (s *Scroller) PageDown() {
	s.ScrollDown(s.pageStep())
}

// ScrollToTop scrolls to the top.
func (s *Scroller) ScrollToTop() {
	s.Offset = 0
}

// ScrollToBottom scrolls to the bottom.
func (s *Scroller) ScrollToBottom() {
	s.Offset = s.MaxOffset()
}

// ScrollTo puts line at the top of the window, as far as the content allows.
func (s *Scroller) ScrollTo(line int) {
	s.Offset = line
	s.clampScroll()
}

// MaxOffset is the largest valid offset.
func (s *Scroller) MaxOffset() int {
	maxOffset := s.Total - s.visibleLines()
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// Progress reports how far through the content the window is, from 0 to 1.
func (s *Scroller) Progress() float64 {
	maxOffset := s.MaxOffset()
	if maxOffset == 0 {
		return 0
	}
	return float64(s.Offset) / float64(maxOffset)
}

// Window returns the visible slice of lines, padded to the window height.
func (s *Scroller) Window(lines []string) []string {
	visible := s.visibleLines()
	out := make([]string, visible)
	for i := 0; i < visible; i++ {
		if idx := s.Offset + i; idx >= 0 && idx < len(lines) {
			out[i] = lines[idx]
		}
	}
	return out
}

// Scrollbar renders a one-column track with a thumb sized to the window.
// It returns one cell per visible line.
func (s *Scroller) Scrollbar(styleSet theme.Styles) []string {
	visible := s.visibleLines()
	cells := make([]string, visible)
	track := styleSet.Muted.Render(" ")
	thumb := styleSet.Accent.Render("┃")
	if s.Total <= visible {
		for i := range cells {
			cells[i] = track
		}
		return cells
	}
	size := max(1, visible*visible/s.Total)
	start := int(s.Progress() * float64(visible-size))
	for i := range cells {
		if i >= start && i < start+size {
			cells[i] = thumb
		} else {
			cells[i] = track
		}
	}
	return cells
}

// Indicator renders a position summary such as "12-40 of 200 (25%)".
func (s *Scroller) Indicator(styleSet theme.Styles) string {
	if s.Total == 0 {
		return ""
	}
	visible := s.visibleLines()
	if s.Total <= visible {
		return styleSet.Muted.Render(fmt.Sprintf("─── %d lines ───", s.Total))
	}
	end := min(s.Offset+visible, s.Total)
	percent := int(s.Progress() * 100)
	return styleSet.Muted.Render(strings.Join([]string{
		"───",
		fmt.Sprintf("%d-%d of %d (%d%%)", s.Offset+1, end, s.Total, percent),
		"───",
	}, " "))
}

func (s *Scroller) pageStep() int {
	if step := s.visibleLines() - 1; step > 0 {
		return step
	}
	return 1
}

func (s *Scroller) visibleLines() int {
	if s.Height < 1 {
		return 1
	}
	return s.Height
}

func (s *Scroller) clampScroll() {
	if s.Offset > s.MaxOffset() {
		s.Offset = s.MaxOffset()
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}
