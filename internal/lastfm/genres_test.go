package lastfm

import "testing"

func TestFormatGenres(t *testing.T) {
	tags := func(names ...string) []Tag {
		out := make([]Tag, 0, len(names))
		for _, n := range names {
			out = append(out, Tag{Name: n})
		}
		return out
	}

	tests := []struct {
		name string
		tags []Tag
		want string
	}{
		{"nil", nil, ""},
		{"empty", []Tag{}, ""},
		{"one", tags("rock"), "rock"},
		{"three", tags("a", "b", "c"), "a" + GenreSeparator + "b" + GenreSeparator + "c"},
		{"four drops the last", tags("a", "b", "c", "d"), "a" + GenreSeparator + "b" + GenreSeparator + "c"},
		{"order kept", tags("zz", "aa"), "zz" + GenreSeparator + "aa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatGenres(tt.tags); got != tt.want {
				t.Errorf("FormatGenres() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenreSeparator(t *testing.T) {
	if GenreSeparator != " · " {
		t.Errorf("GenreSeparator = %q", GenreSeparator)
	}
}
