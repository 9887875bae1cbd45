package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/ui/action"
	"github.com/llehouerou/lfmbrowse/internal/ui/testutil"
)

func newHarness(height int, contexts ...string) *testutil.PopupHarness {
	return testutil.NewPopupHarness(New(contexts...), 80, height)
}

func TestCloseKeys(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			h := newHarness(30, keymap.ContextGlobal)
			msg := testutil.Run(h.Press(key))
			am, ok := msg.(action.Msg)
			if !ok {
				t.Fatalf("expected action.Msg, got %T", msg)
			}
			if _, ok := am.Action.(Close); !ok {
				t.Errorf("expected Close, got %T", am.Action)
			}
			if am.Source != "help" {
				t.Errorf("source = %q", am.Source)
			}
		})
	}
}

func TestViewListsRequestedContextsOnly(t *testing.T) {
	h := newHarness(60, keymap.ContextGlobal, keymap.ContextCharts)
	view := h.View()

	for _, want := range []string{"Help", "Global", "Charts", "Copy share link", "Reload charts"} {
		if !testutil.ContainsLine(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if testutil.ContainsLine(view, "Similar Artists") {
		t.Error("view shows a context that was not requested")
	}
}

func TestViewOrdersCategories(t *testing.T) {
	h := newHarness(60, keymap.ContextCharts, keymap.ContextGlobal)
	lines := testutil.StripANSI(h.View())
	global := strings.Index(lines, "Global")
	charts := strings.Index(lines, "Charts\n")
	if global < 0 || charts < 0 || global > charts {
		t.Errorf("Global at %d, Charts at %d; want Global first", global, charts)
	}
}

func TestScroll(t *testing.T) {
	h := newHarness(8, keymap.ContextGlobal, keymap.ContextSearch)
	m := h.Popup().(*Model)

	if !testutil.ContainsLine(h.View(), "j/k scroll") {
		t.Error("footer should offer scrolling when content overflows")
	}
	h.Press("k")
	if m.scroll != 0 {
		t.Errorf("scroll = %d after k at top", m.scroll)
	}
	for range 100 {
		h.Press("j")
	}
	if m.scroll != m.maxScroll() {
		t.Errorf("scroll = %d, want clamp at %d", m.scroll, m.maxScroll())
	}
}

func TestViewEmptyWithoutSize(t *testing.T) {
	m := New(keymap.ContextGlobal)
	if m.View() != "" {
		t.Error("unsized popup rendered content")
	}
}
