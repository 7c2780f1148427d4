package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickerID atomic.Int64

// TickMsg is delivered on every tick. Only the ticker that produced it acts
// on it.
type TickMsg struct {
	ID   int
	Time time.Time

	gen int
}

// Ticker re-arms a tea.Tick for as long as its owner keeps it running.
// Stopping bumps the generation so ticks already in flight are ignored.
type Ticker struct {
	id       int
	gen      int
	interval time.Duration
	running  bool
}

// NewTicker returns a stopped ticker. A non-positive interval means one
// second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		id:       int(lastTickerID.Add(1)),
		interval: interval,
	}
}

// ID identifies the ticker's messages.
func (t *Ticker) ID() int {
	return t.id
}

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether the ticker is armed.
func (t *Ticker) Running() bool {
	return t.running
}

// Start arms the ticker and returns the first tick command. Starting a
// running ticker restarts it; the previous chain is dropped.
func (t *Ticker) Start() tea.Cmd {
	t.gen++
	t.running = true
	return t.tick()
}

// Update handles a tick. It returns the next tick command and true when the
// message belongs to the current chain, and nil, false otherwise.
func (t *Ticker) Update(msg TickMsg) (tea.Cmd, bool) {
	if !t.running || msg.ID != t.id || msg.gen != t.gen {
		return nil, false
	}
	return t.tick(), true
}

// Stop disarms the ticker.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.gen++
}

func (t *Ticker) tick() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, gen: gen}
	})
}
