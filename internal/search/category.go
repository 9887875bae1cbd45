package search

// Category selects which result kinds a search fetches.
type Category int

const (
	All Category = iota
	Artists
	Albums
	Tracks

	numCategories
)

// Result limits per sub-query.
const (
	AllArtistsLimit = 12
	AllAlbumsLimit  = 10
	AllTracksLimit  = 10

	ArtistsLimit = 20
	AlbumsLimit  = 20
	TracksLimit  = 30
)

var categoryNames = [numCategories]string{
	All:     "top",
	Artists: "artists",
	Albums:  "albums",
	Tracks:  "tracks",
}

var categoryLabels = [numCategories]string{
	All:     "All",
	Artists: "Artists",
	Albums:  "Albums",
	Tracks:  "Tracks",
}

// Categories returns every category in tab order.
func Categories() []Category {
	return []Category{All, Artists, Albums, Tracks}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= All && c < numCategories
}

// String returns the link name of the category ("top", "artists", ...).
func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Label returns the display name of the category.
func (c Category) Label() string {
	if !c.Valid() {
		return ""
	}
	return categoryLabels[c]
}

// Next returns the following category, wrapping around.
func (c Category) Next() Category {
	return (c + 1) % numCategories
}

// Prev returns the preceding category, wrapping around.
func (c Category) Prev() Category {
	return (c + numCategories - 1) % numCategories
}

// ParseCategory parses a link name. Unknown names report false.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), true
		}
	}
	return All, false
}

// SubQuery is one remote search run as part of a batch. Kind is never All.
type SubQuery struct {
	Kind  Category
	Limit int
}

// Plan returns the sub-queries a search in category c issues.
func Plan(c Category) []SubQuery {
	switch c {
	case Artists:
		return []SubQuery{{Artists, ArtistsLimit}}
	case Albums:
		return []SubQuery{{Albums, AlbumsLimit}}
	case Tracks:
		return []SubQuery{{Tracks, TracksLimit}}
	default:
		return []SubQuery{
			{Artists, AllArtistsLimit},
			{Albums, AllAlbumsLimit},
			{Tracks, AllTracksLimit},
		}
	}
}
