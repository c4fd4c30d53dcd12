package tui

import (
	"testing"

	"github.com/hojung1231/nestegg/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos += 2 // separator
			}
		}
	}
}

func TestTabAtXMissesSeparators(t *testing.T) {
	a := App{activeTab: 0}

	if got := a.tabAtX(0); got != -1 {
		t.Fatalf("leading space -> tab=%d, want -1", got)
	}

	// First separator sits right after the active "Income" tab.
	sep := 1 + len("Income")
	if got := a.tabAtX(sep); got != -1 {
		t.Fatalf("separator x=%d -> tab=%d, want -1", sep, got)
	}
	if got := a.tabAtX(10_000); got != -1 {
		t.Fatalf("far right -> tab=%d, want -1", got)
	}
}
