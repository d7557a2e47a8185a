package output

import (
	"strings"
	"testing"
)

func TestStyleDisabledPassesTextThrough(t *testing.T) {
	style := Style{}
	for _, got := range []string{style.Header("x"), style.Label("x"), style.Domain("x")} {
		if got != "x" {
			t.Errorf("disabled style should not alter text, got %q", got)
		}
	}
}

func TestStyleEnabledWrapsWithReset(t *testing.T) {
	style := Style{Enabled: true}
	for _, got := range []string{style.Header("x"), style.Label("x"), style.Domain("x")} {
		if !strings.Contains(got, "x") || !strings.HasSuffix(got, ansiReset) {
			t.Errorf("styled text should contain the original and end with reset, got %q", got)
		}
	}
}

func TestNewStyleQuiet(t *testing.T) {
	if style := NewStyle(true); style.Enabled {
		t.Error("quiet must disable styling")
	}
}

func TestNewStyleNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if style := NewStyle(false); style.Enabled {
		t.Error("NO_COLOR must disable styling")
	}
}
