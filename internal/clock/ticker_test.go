package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTickerChain(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	require.False(t, tk.Running())

	cmd := tk.Start()
	require.NotNil(t, cmd)
	msg := cmd().(TickMsg)
	require.Equal(t, tk.ID(), msg.ID)

	next, ok := tk.Update(msg)
	require.True(t, ok)
	require.NotNil(t, next)
}

func TestTickerIgnoresForeignTicks(t *testing.T) {
	a := NewTicker(time.Millisecond)
	b := NewTicker(time.Millisecond)
	require.NotEqual(t, a.ID(), b.ID())

	msg := a.Start()().(TickMsg)
	b.Start()

	cmd, ok := b.Update(msg)
	require.False(t, ok)
	require.Nil(t, cmd)
}

func TestTickerStopDropsInFlightTicks(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	msg := tk.Start()().(TickMsg)

	tk.Stop()
	_, ok := tk.Update(msg)
	require.False(t, ok)

	// A restarted chain does not accept ticks from the old one either.
	tk.Start()
	_, ok = tk.Update(msg)
	require.False(t, ok)
}

func TestTickerDefaultInterval(t *testing.T) {
	require.Equal(t, time.Second, NewTicker(0).Interval())
}
