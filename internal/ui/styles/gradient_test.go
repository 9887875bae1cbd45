package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestApplyBoldGradient(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single", "L"},
		{"word", "lfmbrowse"},
		{"wide", "音楽ブラウザ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyBoldGradient(tt.text, T().Accent, T().AccentAlt)
			if plain := ansi.Strip(got); plain != tt.text {
				t.Errorf("stripped = %q, want %q", plain, tt.text)
			}
		})
	}
}

func TestToColorfulFallsBackForANSI(t *testing.T) {
	c := toColorful("240")
	if !strings.HasPrefix(c.Hex(), "#80") {
		t.Errorf("hex = %s, want gray", c.Hex())
	}
}
