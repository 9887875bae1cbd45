package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii", "Radiohead", "Radiohead"},
		{"clean unicode", "Sigur Rós", "Sigur Rós"},
		{"no-break space kept", "rock · indie", "rock · indie"},
		{"newline becomes space", "a\nb", "a b"},
		{"tab becomes space", "a\tb", "a b"},
		{"control dropped", "a\x1b[31mb", "a[31mb"},
		{"c1 control dropped", "a\u0085b", "ab"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"delete dropped", "a\x7fb", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"only ellipsis", "hello", 3, "..."},
		{"empty", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"cut", "hello world", 6, "hello…"},
		{"wide runes", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateEllipsis(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, input := range []string{"", "abc", "a much longer string than fits", "日本語テキスト"} {
		got := TruncateAndPad(input, 10)
		if w := runewidth.StringWidth(got); w != 10 {
			t.Errorf("TruncateAndPad(%q, 10) width = %d, want 10", input, w)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row overflow = %q, want single gap", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}
