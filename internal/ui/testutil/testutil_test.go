package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/ui/popup"
)

func TestFindLine(t *testing.T) {
	out := "\x1b[31mfirst\x1b[0m\nsecond line\nthird"
	if got := FindLine(out, "first"); got != "first" {
		t.Errorf("FindLine = %q, want stripped line", got)
	}
	if !ContainsLine(out, "second") {
		t.Error("ContainsLine(second) = false")
	}
	if ContainsLine(out, "fourth") {
		t.Error("ContainsLine(fourth) = true")
	}
}

func TestKey(t *testing.T) {
	for _, name := range []string{"enter", "esc", "tab", "shift+tab", "up", "down", "f1", "f2", "ctrl+c", "/", "y"} {
		if got := Key(name).String(); got != name {
			t.Errorf("Key(%q).String() = %q", name, got)
		}
	}
}

func TestType(t *testing.T) {
	msgs := Type("abc")
	if len(msgs) != 3 || msgs[2].String() != "c" {
		t.Errorf("Type(abc) = %v", msgs)
	}
}

type echoPopup struct {
	keys   []string
	width  int
	height int
}

func (p *echoPopup) Init() tea.Cmd { return func() tea.Msg { return "init" } }

func (p *echoPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p.keys = append(p.keys, msg.String())
		if msg.Type == tea.KeyEnter {
			return p, func() tea.Msg { return "done" }
		}
	case string:
		p.keys = append(p.keys, "msg:"+msg)
	}
	return p, nil
}

func (p *echoPopup) View() string { return "\x1b[1mecho\x1b[0m" }

func (p *echoPopup) SetSize(w, h int) { p.width, p.height = w, h }

func TestPopupHarness(t *testing.T) {
	p := &echoPopup{}
	h := NewPopupHarness(p, 30, 10)

	if p.width != 30 || p.height != 10 {
		t.Errorf("size = %dx%d", p.width, p.height)
	}
	if len(h.Commands()) != 1 {
		t.Fatalf("init command not recorded")
	}
	if h.View() != "echo" {
		t.Errorf("View = %q", h.View())
	}

	h.Press("x")
	cmd := h.Press("enter")
	msg, _ := h.RunAndSend(cmd)
	if msg != "done" {
		t.Errorf("msg = %v", msg)
	}
	want := []string{"x", "enter", "msg:done"}
	if len(p.keys) != len(want) {
		t.Fatalf("keys = %v, want %v", p.keys, want)
	}
	for i := range want {
		if p.keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, p.keys[i], want[i])
		}
	}
}
