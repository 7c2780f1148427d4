package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/theme"
)

func newTestPicker(initial int) *ThemePicker {
	return NewThemePicker(theme.Builtin().Definitions(), initial)
}

func TestThemePickerMoveWraps(t *testing.T) {
	p := newTestPicker(0)

	p.Move(-1)
	if p.Index != 3 {
		t.Fatalf("expected wrap to last entry, got %d", p.Index)
	}
	p.Move(1)
	if p.Index != 0 {
		t.Fatalf("expected wrap to first entry, got %d", p.Index)
	}
	p.Move(6)
	if p.Index != 2 {
		t.Fatalf("expected index 2 after moving 6, got %d", p.Index)
	}
}

func TestThemePickerSelectNumber(t *testing.T) {
	p := newTestPicker(0)
	if !p.SelectNumber(3) {
		t.Fatal("expected 3 to be in range")
	}
	if got := p.Selected(); got == nil || got.ID != theme.IDNeon {
		t.Fatalf("expected neon, got %+v", got)
	}
	if p.SelectNumber(5) || p.SelectNumber(0) {
		t.Fatal("expected out-of-range numbers to be rejected")
	}
	if p.Index != 2 {
		t.Fatalf("rejected numbers must not move the highlight, got %d", p.Index)
	}
}

func TestThemePickerClampsInitial(t *testing.T) {
	if p := newTestPicker(42); p.Index != 3 {
		t.Fatalf("expected clamp to 3, got %d", p.Index)
	}
	if p := newTestPicker(-1); p.Index != 0 {
		t.Fatalf("expected clamp to 0, got %d", p.Index)
	}
	empty := NewThemePicker(nil, 2)
	if empty.Selected() != nil {
		t.Fatal("expected no selection in an empty picker")
	}
	empty.Move(1)
	if empty.Index != 0 {
		t.Fatalf("expected index 0, got %d", empty.Index)
	}
}

func TestThemePickerRender(t *testing.T) {
	p := newTestPicker(1)
	lines := p.Render(theme.DefaultStyles(), 0)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(ansi.Strip(lines[1]), "› 2") {
		t.Errorf("expected highlighted second entry, got %q", ansi.Strip(lines[1]))
	}
	if !strings.Contains(ansi.Strip(lines[3]), "K-Pop") {
		t.Errorf("expected K-Pop entry, got %q", ansi.Strip(lines[3]))
	}

	narrow := p.Render(theme.DefaultStyles(), 20)
	for _, line := range narrow {
		if w := ansi.StringWidth(line); w > 20 {
			t.Errorf("line wider than 20: %d", w)
		}
	}
}
