package search

import (
	"net/url"
	"strings"
)

// Link is the shareable location of a search: a query and a category.
type Link struct {
	Query    string
	Category Category
}

// String encodes the link as "?q=<query>&tab=<category>".
func (l Link) String() string {
	v := url.Values{}
	v.Set("q", l.Query)
	v.Set("tab", l.Category.String())
	return "?" + v.Encode()
}

// ParseLink decodes a link from "?q=..&tab=..", "q=..&tab=.." or a full URL
// carrying those parameters. A missing or unknown tab falls back to All.
// It reports false when the link has no query.
func ParseLink(s string) (Link, bool) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[i+1:]
	} else if strings.Contains(s, "://") {
		return Link{}, false
	}
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}

	values, err := url.ParseQuery(s)
	if err != nil {
		return Link{}, false
	}

	query := strings.TrimSpace(values.Get("q"))
	if query == "" {
		return Link{}, false
	}

	category, ok := ParseCategory(values.Get("tab"))
	if !ok {
		category = All
	}
	return Link{Query: query, Category: category}, true
}

// Location stores the current link somewhere the user can share or restore
// it from.
type Location interface {
	Get() (Link, bool)
	Set(Link)
}

// MemoryLocation is a Location held in memory.
type MemoryLocation struct {
	link Link
	ok   bool
}

// NewMemoryLocation returns a location initialized with link. A link without
// query starts empty.
func NewMemoryLocation(link Link) *MemoryLocation {
	return &MemoryLocation{link: link, ok: strings.TrimSpace(link.Query) != ""}
}

func (l *MemoryLocation) Get() (Link, bool) { return l.link, l.ok }

func (l *MemoryLocation) Set(link Link) {
	l.link = link
	l.ok = true
}
