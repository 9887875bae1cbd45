package lastfm

import "strings"

// GenreSeparator joins genre names: a middle dot padded with no-break spaces.
const GenreSeparator = "\u00a0\u00b7\u00a0"

const maxGenres = 3

// FormatGenres joins the names of the first three tags. Tags are kept in the
// order Last.fm returned them.
func FormatGenres(tags []Tag) string {
	if len(tags) == 0 {
		return ""
	}

	n := min(len(tags), maxGenres)
	names := make([]string, 0, n)
	for _, t := range tags[:n] {
		names = append(names, t.Name)
	}
	return strings.Join(names, GenreSeparator)
}
