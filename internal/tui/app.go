package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/ellen-studio/folio/internal/clock"
	"github.com/ellen-studio/folio/internal/config"
	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/logging"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/overlay"
	"github.com/ellen-studio/folio/internal/theme"
	"github.com/ellen-studio/folio/internal/tui/components"
)

const (
	minWidth  = 40
	minHeight = 16

	wheelStep = 3
)

// Config carries everything the UI needs from flags and the config file.
type Config struct {
	// Selection is the session's theme state. Nil means a fresh selection
	// over the builtin registry.
	Selection *theme.Selection
	// InitialTheme is highlighted in the picker on start.
	InitialTheme     string
	DismissDelay     time.Duration
	MobileBreakpoint int
	ScrollThreshold  int
	Clock            *clock.Clock
	ClockInterval    time.Duration
	FPS              int
	CursorSpring     motion.SpringConfig
	SpotlightSpring  motion.SpringConfig
	Mouse            bool
}

// NewConfig maps loaded configuration onto UI settings.
func NewConfig(cfg *config.Config) (Config, error) {
	clk, err := clock.New(cfg.Clock.Timezone)
	if err != nil {
		return Config{}, err
	}
	return Config{
		InitialTheme:     cfg.Theme.Default,
		DismissDelay:     cfg.Loading.DismissDelay,
		MobileBreakpoint: cfg.Layout.MobileBreakpoint,
		ScrollThreshold:  cfg.Layout.ScrollThreshold,
		Clock:            clk,
		ClockInterval:    cfg.Clock.Interval,
		FPS:              cfg.Motion.FPS,
		CursorSpring:     cfg.Motion.Cursor,
		SpotlightSpring:  cfg.Motion.Spotlight,
		Mouse:            cfg.Mouse,
	}, nil
}

func (c Config) withDefaults() Config {
	if c.Selection == nil {
		c.Selection = theme.NewSelection(nil, c.InitialTheme)
	}
	if c.MobileBreakpoint <= 0 {
		c.MobileBreakpoint = config.DefaultMobileBreakpoint
	}
	if c.ScrollThreshold < 0 {
		c.ScrollThreshold = 0
	}
	if c.Clock == nil {
		c.Clock = clock.Must(clock.DefaultZone)
	}
	if c.FPS <= 0 {
		c.FPS = config.DefaultFPS
	}
	if c.CursorSpring == (motion.SpringConfig{}) {
		c.CursorSpring = motion.CursorSpring
	}
	if c.SpotlightSpring == (motion.SpringConfig{}) {
		c.SpotlightSpring = motion.SpotlightSpring
	}
	return c
}

// Run launches the folio TUI with default settings.
func Run(ctx context.Context) error {
	cfg, err := NewConfig(config.DefaultConfig())
	if err != nil {
		return err
	}
	return RunWithConfig(ctx, cfg)
}

// RunWithConfig launches the folio TUI. Cancelling ctx ends the program
// cleanly.
func RunWithConfig(ctx context.Context, cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

type model struct {
	cfg    Config
	width  int
	height int

	selection *theme.Selection
	overlays  *overlay.Controller
	keys      keyMap
	help      help.Model
	showHelp  bool

	picker       *components.ThemePicker
	progress     progress.Model
	dismissing   bool
	dismissStart time.Time

	page         *components.Scroller
	layout       *pageLayout
	fx           *effects
	about        *aboutView
	inspirations *components.Scroller
	menuIndex    int
	md           *markdownCache

	clock       *clock.Clock
	clockTicker *clock.Ticker
	clockTime   time.Time
	frames      *clock.Ticker

	logger  zerolog.Logger
	timeNow func() time.Time
}

func newModel(cfg Config) model {
	cfg = cfg.withDefaults()
	logger := logging.Component("tui")
	reg := cfg.Selection.Registry()

	m := model{
		cfg:          cfg,
		selection:    cfg.Selection,
		overlays:     overlay.NewController(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		picker:       components.NewThemePicker(reg.Definitions(), reg.IndexOf(cfg.InitialTheme)),
		page:         components.NewScroller(0),
		layout:       &pageLayout{},
		fx:           newEffects(cfg.FPS, cfg.CursorSpring, cfg.SpotlightSpring),
		about:        newAboutView(),
		inspirations: components.NewScroller(0),
		md:           &markdownCache{},
		clock:        cfg.Clock,
		clockTicker:  clock.NewTicker(cfg.ClockInterval),
		frames:       clock.NewTicker(time.Second / time.Duration(cfg.FPS)),
		logger:       logger,
		timeNow:      time.Now,
	}
	m.clockTime = m.timeNow()
	m.overlays.OnChange(func(tr overlay.Transition) {
		logger.Debug().Str("overlay", tr.Overlay.String()).Bool("open", tr.Open).Msg("overlay changed")
	})
	cfg.Selection.Subscribe(func(c theme.Change) {
		if !c.Recognized {
			logger.Debug().Str("requested", c.Requested).Str("fallback", string(c.To.ID)).Msg("unknown theme, using fallback")
		}
		logger.Info().Str("theme", string(c.To.ID)).Msg("theme selected")
	})
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Ellen.sys"), m.clockTicker.Start())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug().Int("width", m.width).Int("height", m.height).Bool("mobile", m.mobile()).Msg("resize")
		m.relayout()
		m.fx.navWidth.Jump(m.navbarTarget())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case clock.TickMsg:
		if next, ok := m.clockTicker.Update(msg); ok {
			m.clockTime = msg.Time
			return m, next
		}
		if next, ok := m.frames.Update(msg); ok {
			return m.handleFrame(next)
		}
	case loadingDoneMsg:
		return m.finishLoading()
	}
	return m, nil
}

// tooSmall reports a terminal below the minimum size; nothing but the size
// notice is laid out then.
func (m model) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}

func (m model) mobile() bool {
	return m.width < m.cfg.MobileBreakpoint
}

// pageHeight leaves the bottom row for the key hints.
func (m model) pageHeight() int {
	return max(m.height-1, 1)
}

// topmost returns the overlay that receives input. The mobile menu only
// counts in the mobile layout; its flag survives a resize untouched.
func (m model) topmost() (overlay.Name, bool) {
	for _, name := range overlay.All {
		if !m.overlays.IsOpen(name) {
			continue
		}
		if name == overlay.MobileMenu && !m.mobile() {
			continue
		}
		return name, true
	}
	return 0, false
}

func (m model) topmostIs(name overlay.Name) bool {
	top, ok := m.topmost()
	return ok && top == name
}

// relayout measures the page and overlays for the current size and theme.
func (m model) relayout() {
	if m.tooSmall() {
		return
	}
	f := m.frame()
	_, lay := f.page()
	*m.layout = lay
	m.page.SetHeight(f.height)
	m.page.SetTotal(lay.total)

	g := f.stackGeometry()
	m.inspirations.SetHeight(g.view)
	m.inspirations.SetTotal(g.total)
	m.syncAbout()
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	top, ok := m.topmost()
	if ok && top == overlay.Loading {
		return m.handleLoadingKey(msg)
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return m, nil
	}
	if !ok {
		return m.handlePageKey(msg)
	}
	switch top {
	case overlay.Inspirations:
		return m.handleInspirationsKey(msg)
	case overlay.About:
		return m.handleAboutKey(msg)
	case overlay.MobileMenu:
		return m.handleMenuKey(msg)
	}
	return m, nil
}

func (m model) handleLoadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dismissing {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.picker.Move(1)
	case key.Matches(msg, m.keys.Pick):
		n, _ := strconv.Atoi(msg.String())
		if m.picker.SelectNumber(n) {
			return m.chooseTheme()
		}
	case key.Matches(msg, m.keys.Select):
		return m.chooseTheme()
	}
	return m, nil
}

// chooseTheme applies the highlighted palette and starts the dismiss timer.
// The selection changes exactly once per session.
func (m model) chooseTheme() (tea.Model, tea.Cmd) {
	def := m.picker.Selected()
	if def == nil {
		return m, nil
	}
	m.selection.Set(string(def.ID))
	m.dismissing = true
	m.dismissStart = m.timeNow()
	m.progress = newProgress(m.selection.Current(), max(min(loadingWidth, m.width-4), 10))
	return m, tea.Batch(dismissAfter(m.cfg.DismissDelay), m.animate())
}

func (m model) finishLoading() (tea.Model, tea.Cmd) {
	if !m.overlays.Close(overlay.Loading) {
		return m, nil
	}
	m.dismissing = false
	m.relayout()
	m.fx.navWidth.Jump(m.navbarTarget())
	if m.cfg.Mouse {
		return m, tea.EnableMouseAllMotion
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.clockTicker.Stop()
	m.frames.Stop()
	if m.cfg.Mouse {
		return m, tea.Sequence(tea.DisableMouse, tea.Quit)
	}
	return m, tea.Quit
}

func (m model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.About):
		m.openAbout()
	case key.Matches(msg, m.keys.Inspirations):
		m.overlays.Open(overlay.Inspirations)
	case key.Matches(msg, m.keys.Menu):
		if !m.mobile() {
			return m, nil
		}
		m.overlays.Toggle(overlay.MobileMenu)
		m.menuIndex = 0
	case key.Matches(msg, m.keys.Up):
		m.page.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.page.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.page.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.page.PageDown()
	case key.Matches(msg, m.keys.Home), key.Matches(msg, m.keys.Top):
		m.page.ScrollToTop()
	case key.Matches(msg, m.keys.End):
		m.page.ScrollToBottom()
	default:
		return m, nil
	}
	m.retarget()
	return m, m.animate()
}

func (m model) handleAboutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.about.viewport
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Select):
		m.overlays.Close(overlay.About)
	case key.Matches(msg, m.keys.Up):
		vp.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		vp.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		vp.LineUp(max(vp.Height-1, 1))
	case key.Matches(msg, m.keys.PageDown):
		vp.LineDown(max(vp.Height-1, 1))
	case key.Matches(msg, m.keys.Home):
		vp.GotoTop()
	case key.Matches(msg, m.keys.End):
		vp.GotoBottom()
	default:
		return m, nil
	}
	m.retarget()
	return m, m.animate()
}

func (m model) handleInspirationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.inspirations
	switch {
	case key.Matches(msg, m.keys.Close):
		m.overlays.Close(overlay.Inspirations)
	case key.Matches(msg, m.keys.Up):
		s.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		s.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		s.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		s.PageDown()
	case key.Matches(msg, m.keys.Home):
		s.ScrollToTop()
	case key.Matches(msg, m.keys.End):
		s.ScrollToBottom()
	default:
		return m, nil
	}
	m.retarget()
	return m, m.animate()
}

func (m model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := content.NavItems()
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
		m.overlays.Close(overlay.MobileMenu)
	case key.Matches(msg, m.keys.Up):
		m.menuIndex = (m.menuIndex - 1 + len(items)) % len(items)
	case key.Matches(msg, m.keys.Down):
		m.menuIndex = (m.menuIndex + 1) % len(items)
	case key.Matches(msg, m.keys.Select):
		m.overlays.Close(overlay.MobileMenu)
		m.activate(items[m.menuIndex])
	case key.Matches(msg, m.keys.About):
		m.overlays.Close(overlay.MobileMenu)
		m.openAbout()
	case key.Matches(msg, m.keys.Inspirations):
		m.overlays.Close(overlay.MobileMenu)
		m.overlays.Open(overlay.Inspirations)
	default:
		return m, nil
	}
	m.retarget()
	return m, m.animate()
}

func (m model) openAbout() {
	if m.overlays.Open(overlay.About) {
		m.about.viewport.GotoTop()
		m.syncAbout()
	}
}

// activate performs a link's action.
func (m model) activate(link content.Link) {
	switch link.Action {
	case content.ActionScroll:
		m.page.ScrollTo(m.layout.top(link.Section))
	case content.ActionTop:
		m.page.ScrollToTop()
	case content.ActionOpenAbout:
		m.openAbout()
	case content.ActionOpenInspirations:
		m.overlays.Open(overlay.Inspirations)
	}
}

func (m *model) follow(h hit) {
	switch h.target {
	case targetLink:
		m.activate(h.link)
	case targetMenu:
		m.overlays.Toggle(overlay.MobileMenu)
		m.menuIndex = 0
	case targetCloseAbout:
		m.overlays.Close(overlay.About)
	case targetCloseInspirations:
		m.overlays.Close(overlay.Inspirations)
	}
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlays.IsOpen(overlay.Loading) || m.tooSmall() {
		return m, nil
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scroll(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		return m.scroll(wheelStep)
	case msg.Action == tea.MouseActionMotion:
		m.fx.track(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.fx.track(msg.X, msg.Y)
		m.click(msg.X, msg.Y)
	default:
		return m, nil
	}
	m.retarget()
	return m, m.animate()
}

// click routes a press to the topmost layer under it.
func (m *model) click(x, y int) {
	f := m.frame()
	top, covered := m.topmost()
	switch {
	case covered && top == overlay.Inspirations:
		_, hits := f.overlayHeader(targetCloseInspirations)
		if h, ok := hitAt(hits, x, y); ok {
			m.follow(h)
		}
	case covered && top == overlay.About:
		_, hits := f.overlayHeader(targetCloseAbout)
		if r := m.connectOnScreen(); r.Y >= 1 {
			hits = append(hits, hit{rect: r, target: targetCloseAbout})
		}
		if h, ok := hitAt(hits, x, y); ok {
			m.follow(h)
		}
	case covered && top == overlay.MobileMenu:
		// Any press closes the menu; one on an item also follows it.
		m.overlays.Close(overlay.MobileMenu)
		if h, ok := hitAt(f.mobileMenu().hits, x, y); ok {
			m.follow(h)
		}
	default:
		if h, ok := hitAt(f.navbar().hits, x, y); ok {
			m.follow(h)
			return
		}
		if h, ok := hitAt(m.layout.hits, x, y+m.page.Offset); ok {
			m.follow(h)
		}
	}
}

func (m model) scroll(delta int) (tea.Model, tea.Cmd) {
	top, covered := m.topmost()
	switch {
	case covered && top == overlay.Inspirations:
		m.inspirations.ScrollDown(delta)
	case covered && top == overlay.About:
		if delta < 0 {
			m.about.viewport.LineUp(-delta)
		} else {
			m.about.viewport.LineDown(delta)
		}
	case m.overlays.ScrollLocked():
		return m, nil
	default:
		m.page.ScrollDown(delta)
	}
	m.retarget()
	return m, m.animate()
}

func (m model) navbarTarget() float64 {
	if m.navExpanded() {
		return float64(fullNavbarWidth(m.width))
	}
	return navbarCollapsedWidth
}

// retarget points every spring at its goal for the current pointer and
// scroll position.
func (m model) retarget() {
	m.fx.navWidth.Target = m.navbarTarget()
	top, covered := m.topmost()
	pageVisible := !covered || top == overlay.MobileMenu
	for _, h := range m.layout.hits {
		if h.magnet == "" {
			continue
		}
		r := h.rect
		r.Y -= m.page.Offset
		m.fx.pull(h.magnet, r, pageVisible)
	}
	m.fx.pull(aboutConnectKey, m.connectOnScreen(), covered && top == overlay.About)
}

// animating reports whether anything on screen still moves without input.
func (m model) animating() bool {
	if m.dismissing || m.topmostIs(overlay.About) {
		return true
	}
	return !m.fx.settled()
}

// animate starts the frame loop if something moves and it is not running.
func (m model) animate() tea.Cmd {
	if m.frames.Running() || !m.animating() {
		return nil
	}
	return m.frames.Start()
}

func (m model) handleFrame(next tea.Cmd) (tea.Model, tea.Cmd) {
	m.fx.step()
	if m.topmostIs(overlay.About) {
		m.about.marquee.Advance(m.frames.Interval())
		m.syncAbout()
	}
	if m.animating() {
		return m, next
	}
	m.frames.Stop()
	return m, nil
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.tooSmall() {
		st := theme.BuildStyles(m.selection.Current())
		notice := components.TooSmall(m.width, m.height, minWidth, minHeight).Render(st)
		return paintScreen(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice), m.width, st)
	}
	if m.overlays.IsOpen(overlay.Loading) {
		return m.loadingView()
	}

	f := m.frame()
	var lines []string
	switch top, covered := m.topmost(); {
	case covered && top == overlay.Inspirations:
		lines, _ = f.inspirationsScreen()
	case covered && top == overlay.About:
		lines, _ = f.aboutScreen()
	default:
		lines = f.pageScreen()
	}
	lines = fitLines(lines, f.width, f.height)
	lines = append(lines, f.hintBar())
	if m.showHelp {
		f.drawHelp(lines)
	}
	if f.cursorVisible() {
		x, y := m.fx.cursor.Position().Cell()
		if y >= 0 && y < len(lines) && x >= 0 && x < f.width {
			lines[y] = overlayAt(lines[y], f.st.Cursor.Render("●"), x)
		}
	}
	return paintScreen(strings.Join(lines, "\n"), f.width, f.st)
}

func (f frame) pageScreen() []string {
	page, _ := f.page()
	lines := f.m.page.Window(page)
	bar := f.m.page.Scrollbar(f.st)
	for i := range lines {
		lines[i] = fit(lines[i], f.width)
		if i < len(bar) {
			lines[i] = overlayAt(lines[i], bar[i], f.width-1)
		}
	}
	nav := f.navbar()
	for i, line := range nav.lines {
		if i < len(lines) {
			lines[i] = overlayAt(lines[i], line, nav.x)
		}
	}
	if f.mobile && f.m.overlays.IsOpen(overlay.MobileMenu) {
		menu := f.mobileMenu()
		for i, line := range menu.lines {
			if y := navbarHeight + i; y < len(lines) {
				lines[y] = overlayAt(lines[y], line, menu.x)
			}
		}
	}
	return lines
}

func (f frame) hintBar() string {
	bindings := f.m.keys.ShortHelp()
	if f.mobile {
		bindings = append([]key.Binding{f.m.keys.Menu}, bindings...)
	}
	right := ""
	switch top, covered := f.m.topmost(); {
	case covered && top == overlay.MobileMenu:
		bindings = f.m.keys.menuHelp()
	case covered:
		bindings = f.m.keys.overlayHelp()
	default:
		right = f.m.page.Indicator(f.st)
	}
	left := " " + f.m.helpView(f.st, bindings)
	if right == "" || ansi.StringWidth(left)+ansi.StringWidth(right)+2 > f.width {
		return fit(left, f.width)
	}
	return overlayAt(fit(left, f.width), right, f.width-ansi.StringWidth(right)-1)
}

// drawHelp centres the full key reference over lines.
func (f frame) drawHelp(lines []string) {
	h := f.m.help
	h.Width = f.width - 8
	h.Styles = helpStyles(f.st)
	box := f.st.Modal.Render(h.FullHelpView(f.m.keys.FullHelp()))
	x := max((f.width-lipgloss.Width(box))/2, 0)
	y := max((f.height-lipgloss.Height(box))/2, 0)
	for i, line := range strings.Split(box, "\n") {
		if y+i < len(lines) {
			lines[y+i] = overlayAt(lines[y+i], line, x)
		}
	}
}

// cursorVisible hides the follower on narrow layouts, as touch screens
// have no pointer to follow.
func (f frame) cursorVisible() bool {
	return !f.mobile && f.m.cfg.Mouse && f.m.fx.pointer.Present
}
