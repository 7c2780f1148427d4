package tui

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/clock"
	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/overlay"
	"github.com/ellen-studio/folio/internal/theme"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return nm, cmd
}

func newTestModel(t *testing.T, width, height int) model {
	t.Helper()
	m := newModel(Config{
		ClockInterval: time.Millisecond,
		Mouse:         true,
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// booted returns a model past the loading screen with the given picker
// number chosen.
func booted(t *testing.T, width, height int, pick string) model {
	t.Helper()
	m := newTestModel(t, width, height)
	m, _ = update(t, m, keyPress(pick))
	m, _ = update(t, m, loadingDoneMsg{})
	if m.overlays.IsOpen(overlay.Loading) {
		t.Fatal("expected loading overlay to be dismissed")
	}
	return m
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t, 100, 40)

	if !m.overlays.IsOpen(overlay.Loading) {
		t.Fatal("expected loading overlay on start")
	}
	if m.selection.Chosen() {
		t.Fatal("expected no theme chosen before the picker")
	}
	if m.selection.ID() != theme.IDDefault {
		t.Fatalf("expected default theme, got %q", m.selection.ID())
	}
	if !m.overlays.ScrollLocked() {
		t.Fatal("expected page scroll locked while loading")
	}
}

func TestPickThemeThenDismiss(t *testing.T) {
	m := newTestModel(t, 100, 40)

	m, cmd := update(t, m, keyPress("3"))
	if cmd == nil {
		t.Fatal("expected dismiss timer command")
	}
	if m.selection.ID() != theme.IDNeon {
		t.Fatalf("expected neon, got %q", m.selection.ID())
	}
	if !m.overlays.IsOpen(overlay.Loading) {
		t.Fatal("loading overlay must stay until the delay elapses")
	}

	// A second pick during the dismiss delay is ignored.
	m, _ = update(t, m, keyPress("1"))
	if m.selection.ID() != theme.IDNeon {
		t.Fatalf("expected theme to stay neon, got %q", m.selection.ID())
	}

	m, cmd = update(t, m, loadingDoneMsg{})
	if m.overlays.IsOpen(overlay.Loading) {
		t.Fatal("expected loading overlay closed")
	}
	if cmd == nil {
		t.Fatal("expected mouse reporting to be enabled after loading")
	}
	if got := m.frame().st.Theme.Tokens.Accent; got != "#FF00FF" {
		t.Fatalf("expected neon accent, got %q", got)
	}

	// Loading never comes back.
	m, _ = update(t, m, loadingDoneMsg{})
	if m.overlays.IsOpen(overlay.Loading) {
		t.Fatal("loading overlay reopened")
	}
}

func TestPickerNavigationAndEnter(t *testing.T) {
	m := newTestModel(t, 100, 40)

	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("up"))
	if m.selection.Chosen() {
		t.Fatal("moving the highlight must not change the theme")
	}

	m, _ = update(t, m, keyPress("enter"))
	if m.selection.ID() != theme.IDKpop {
		t.Fatalf("expected kpop, got %q", m.selection.ID())
	}
}

func TestInitialThemeHighlighted(t *testing.T) {
	m := newModel(Config{InitialTheme: "dark"})
	if got := m.picker.Selected().ID; got != theme.IDDark {
		t.Fatalf("expected dark highlighted, got %q", got)
	}

	m = newModel(Config{InitialTheme: "sepia"})
	if got := m.picker.Selected().ID; got != theme.IDDefault {
		t.Fatalf("expected fallback highlighted, got %q", got)
	}
}

func TestAboutOpenCloseIdempotent(t *testing.T) {
	m := booted(t, 100, 40, "1")

	m, _ = update(t, m, keyPress("a"))
	m, _ = update(t, m, keyPress("a"))
	if !m.overlays.IsOpen(overlay.About) {
		t.Fatal("expected About open")
	}
	if !m.overlays.ScrollLocked() {
		t.Fatal("expected scroll locked while About is open")
	}

	m, _ = update(t, m, keyPress("esc"))
	if m.overlays.IsOpen(overlay.About) {
		t.Fatal("expected About closed")
	}
	m, _ = update(t, m, keyPress("esc"))
	if m.overlays.IsOpen(overlay.About) {
		t.Fatal("expected About to stay closed")
	}
}

func TestInspirationsOverAbout(t *testing.T) {
	m := booted(t, 100, 40, "1")

	m.activate(content.Link{Action: content.ActionOpenAbout})
	m.activate(content.Link{Action: content.ActionOpenInspirations})
	if top, _ := m.topmost(); top != overlay.Inspirations {
		t.Fatalf("expected inspirations on top, got %s", top)
	}

	m, _ = update(t, m, keyPress("esc"))
	if top, _ := m.topmost(); top != overlay.About {
		t.Fatalf("expected About underneath, got %s", top)
	}
}

func TestScrollLockedWhileModalOpen(t *testing.T) {
	m := booted(t, 100, 40, "1")
	wheel := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}

	m, _ = update(t, m, keyPress("i"))
	m, _ = update(t, m, wheel)
	if m.page.Offset != 0 {
		t.Fatalf("page scrolled under a modal: offset %d", m.page.Offset)
	}
	if m.inspirations.Offset != wheelStep {
		t.Fatalf("expected overlay to scroll, offset %d", m.inspirations.Offset)
	}

	m, _ = update(t, m, keyPress("esc"))
	m, _ = update(t, m, wheel)
	if m.page.Offset != wheelStep {
		t.Fatalf("expected page offset %d, got %d", wheelStep, m.page.Offset)
	}
}

func TestResizeKeepsOverlayAndTheme(t *testing.T) {
	m := booted(t, 100, 40, "2")
	m, _ = update(t, m, keyPress("a"))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if !m.mobile() {
		t.Fatal("expected mobile layout below the breakpoint")
	}
	if !m.overlays.IsOpen(overlay.About) {
		t.Fatal("resize closed About")
	}
	if m.selection.ID() != theme.IDDark {
		t.Fatalf("resize changed theme to %q", m.selection.ID())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.mobile() || !m.overlays.IsOpen(overlay.About) {
		t.Fatal("expected desktop layout with About still open")
	}
}

func TestMobileMenu(t *testing.T) {
	m := booted(t, 100, 40, "1")
	m, _ = update(t, m, keyPress("m"))
	if m.overlays.IsOpen(overlay.MobileMenu) {
		t.Fatal("menu key must do nothing on the desktop layout")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	m, _ = update(t, m, keyPress("m"))
	if !m.overlays.IsOpen(overlay.MobileMenu) {
		t.Fatal("expected menu open")
	}
	if m.overlays.ScrollLocked() {
		t.Fatal("menu must not lock page scrolling")
	}

	m, _ = update(t, m, keyPress("a"))
	if m.overlays.IsOpen(overlay.MobileMenu) {
		t.Fatal("opening About from the menu must close it")
	}
	if !m.overlays.IsOpen(overlay.About) {
		t.Fatal("expected About open")
	}
}

func TestMobileMenuSurvivesWideResize(t *testing.T) {
	m := booted(t, 60, 30, "1")
	m, _ = update(t, m, keyPress("m"))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.overlays.IsOpen(overlay.MobileMenu) {
		t.Fatal("resize must not change overlay flags")
	}
	if _, ok := m.topmost(); ok {
		t.Fatal("menu must not take input on the desktop layout")
	}
}

func TestMenuSelectScrolls(t *testing.T) {
	m := booted(t, 60, 30, "1")
	m, _ = update(t, m, keyPress("m"))
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("enter"))

	if m.overlays.IsOpen(overlay.MobileMenu) {
		t.Fatal("expected menu closed after choosing")
	}
	want := min(m.layout.top(content.SectionProtocol), m.page.MaxOffset())
	if m.page.Offset != want {
		t.Fatalf("expected offset %d, got %d", want, m.page.Offset)
	}
}

func TestLinkScrollsToSection(t *testing.T) {
	m := booted(t, 100, 40, "1")
	m.activate(content.Link{Action: content.ActionScroll, Section: content.SectionWork})

	want := m.layout.top(content.SectionWork)
	if want == 0 {
		t.Fatal("expected the work section below the hero")
	}
	if m.page.Offset != min(want, m.page.MaxOffset()) {
		t.Fatalf("expected offset %d, got %d", want, m.page.Offset)
	}

	m.activate(content.Link{Action: content.ActionTop})
	if m.page.Offset != 0 {
		t.Fatalf("expected top, got %d", m.page.Offset)
	}
}

func TestNavbarCollapsesAfterScroll(t *testing.T) {
	m := booted(t, 100, 40, "1")
	if !m.navExpanded() {
		t.Fatal("expected full navbar at the top")
	}

	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	if m.navExpanded() {
		t.Fatal("expected collapsed navbar after scrolling")
	}
	if m.fx.navWidth.Target != navbarCollapsedWidth {
		t.Fatalf("expected collapsed target, got %v", m.fx.navWidth.Target)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 50, Y: 1, Action: tea.MouseActionMotion})
	if !m.navExpanded() {
		t.Fatal("expected hover to expand the navbar")
	}
}

func TestFrameLoopStopsWhenSettled(t *testing.T) {
	m := booted(t, 100, 40, "1")

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion})
	m, _ = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionMotion})
	if !m.frames.Running() {
		t.Fatal("expected frame loop to run while springs move")
	}

	for i := 0; i < 2000 && m.frames.Running(); i++ {
		var next tea.Model
		next, _ = m.handleFrame(nil)
		m = next.(model)
	}
	if m.frames.Running() {
		t.Fatal("frame loop did not stop")
	}
	if got := m.fx.cursor.Position(); got.X != 60 || got.Y != 20 {
		t.Fatalf("expected cursor to settle on the pointer, got %+v", got)
	}
}

func TestClockTick(t *testing.T) {
	m := newTestModel(t, 100, 40)

	msg, ok := m.clockTicker.Start()().(clock.TickMsg)
	if !ok {
		t.Fatal("expected a clock tick")
	}
	m, cmd := update(t, m, msg)
	if cmd == nil {
		t.Fatal("expected the clock to re-arm")
	}
	if !m.clockTime.Equal(msg.Time) {
		t.Fatalf("expected clock time %v, got %v", msg.Time, m.clockTime)
	}

	_, cmd = update(t, m, clock.TickMsg{ID: -1, Time: time.Now()})
	if cmd != nil {
		t.Fatal("foreign ticks must be ignored")
	}
}

func TestQuitStopsTickers(t *testing.T) {
	m := newTestModel(t, 100, 40)
	m.clockTicker.Start()

	_, cmd := update(t, m, keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.clockTicker.Running() || m.frames.Running() {
		t.Fatal("expected tickers stopped on quit")
	}
}

func TestViews(t *testing.T) {
	m := newTestModel(t, 100, 40)
	if view := ansi.Strip(m.View()); !strings.Contains(view, "SELECT A PALETTE") {
		t.Fatalf("expected picker on the loading screen, got:\n%s", view)
	}

	m, _ = update(t, m, keyPress("1"))
	m, _ = update(t, m, loadingDoneMsg{})
	view := ansi.Strip(m.View())
	if !strings.Contains(view, spaced(content.HeroTitle)) {
		t.Fatalf("expected hero title, got:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != 40 {
		t.Fatalf("expected 40 lines, got %d", got)
	}

	m, _ = update(t, m, keyPress("a"))
	if view := ansi.Strip(m.View()); !strings.Contains(view, "INITIATE CONNECTION") {
		t.Fatalf("expected About view, got:\n%s", view)
	}

	m, _ = update(t, m, keyPress("esc"))
	m, _ = update(t, m, keyPress("i"))
	if view := ansi.Strip(m.View()); !strings.Contains(view, spaced(content.InspirationsTitle)) {
		t.Fatalf("expected Inspirations view, got:\n%s", view)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Terminal too small") {
		t.Fatalf("expected size notice, got:\n%s", view)
	}
}

func TestFooterLinksAreClickable(t *testing.T) {
	m := booted(t, 100, 40, "1")

	var about hit
	found := false
	for _, h := range m.layout.hits {
		if h.target == targetLink && h.link.Action == content.ActionOpenAbout {
			about, found = h, true
		}
	}
	if !found {
		t.Fatal("expected an About link in the footer")
	}

	m.page.ScrollToBottom()
	x, y := about.rect.X, about.rect.Y-m.page.Offset
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.overlays.IsOpen(overlay.About) {
		t.Fatal("expected click to open About")
	}
}

func TestTinySizesKeepState(t *testing.T) {
	sizes := []struct {
		width, height int
	}{
		{1, 1},
		{2, 40},
		{3, 40},
		{39, 15},
	}
	inputs := []tea.Msg{
		keyPress("j"),
		keyPress("a"),
		keyPress("esc"),
		keyPress("m"),
		tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion},
		tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{Button: tea.MouseButtonWheelDown},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.width, size.height), func(t *testing.T) {
			// Straight to a tiny terminal, then through the loading screen.
			m := newTestModel(t, size.width, size.height)
			_ = m.View()
			m, _ = update(t, m, keyPress("3"))
			m, _ = update(t, m, loadingDoneMsg{})
			if m.selection.ID() != theme.IDNeon {
				t.Fatalf("expected neon, got %q", m.selection.ID())
			}
			if view := ansi.Strip(m.View()); !strings.Contains(view, "Terminal") && size.width > 20 {
				t.Fatalf("expected size notice, got:\n%s", view)
			}

			// From a full layout with About open, shrink and poke at it.
			m = booted(t, 100, 40, "2")
			m, _ = update(t, m, keyPress("a"))
			before := m.overlays.State()
			m, _ = update(t, m, tea.WindowSizeMsg{Width: size.width, Height: size.height})
			if m.overlays.State() != before || m.selection.ID() != theme.IDDark {
				t.Fatalf("resize changed state: %+v -> %+v", before, m.overlays.State())
			}
			for _, msg := range inputs {
				m, _ = update(t, m, msg)
				_ = m.View()
			}
			next, _ := m.handleFrame(nil)
			m = next.(model)
			_ = m.View()

			m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
			if m.selection.ID() != theme.IDDark {
				t.Fatalf("expected dark theme kept, got %q", m.selection.ID())
			}
			if view := m.View(); len(strings.Split(view, "\n")) != 40 {
				t.Fatal("expected a full layout after growing back")
			}
		})
	}
}

func TestClockShowsTimeBeforeFirstTick(t *testing.T) {
	m := newTestModel(t, 100, 40)
	m.cfg.DismissDelay = 0
	m, _ = update(t, m, keyPress("1"))
	m, _ = update(t, m, loadingDoneMsg{})

	got := m.clock.Format(m.clockTime)
	if got == clock.Placeholder {
		t.Fatal("expected a time before the first tick")
	}
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`).MatchString(got) {
		t.Fatalf("expected HH:MM:SS, got %q", got)
	}
}
