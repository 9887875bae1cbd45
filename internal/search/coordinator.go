// Package search coordinates Last.fm searches: it owns the visible search
// state, decides which sub-queries a category needs, and keeps the shareable
// link in sync. Only the newest batch may change the state.
package search

import (
	"context"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/lastfm"
)

// Searcher runs the remote searches. *lastfm.Client implements it.
type Searcher interface {
	SearchArtists(ctx context.Context, query string, limit int) ([]lastfm.Artist, error)
	SearchAlbums(ctx context.Context, query string, limit int) ([]lastfm.Album, error)
	SearchTracks(ctx context.Context, query string, limit int) ([]lastfm.Track, error)
}

var _ Searcher = (*lastfm.Client)(nil)

// Status is the lifecycle stage of the current search.
type Status int

const (
	Idle Status = iota
	Pending
	Settled
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Settled:
		return "settled"
	default:
		return "idle"
	}
}

// State is a snapshot of the search as the user sees it.
type State struct {
	Query    string
	Category Category
	Status   Status
	// Err is the failure of a single-category search. All-category searches
	// never set it.
	Err        error
	Generation uint64

	Artists []lastfm.Artist
	Albums  []lastfm.Album
	Tracks  []lastfm.Track

	loading [numCategories]bool
}

// Loading reports whether results of kind are still being fetched. For All
// it reports whether any kind is.
func (s State) Loading(kind Category) bool {
	if kind == All {
		return slices.Contains(s.loading[:], true)
	}
	if !kind.Valid() {
		return false
	}
	return s.loading[kind]
}

// Link returns the shareable link of the state.
func (s State) Link() Link {
	return Link{Query: s.Query, Category: s.Category}
}

// ResultMsg carries the outcome of one sub-query.
type ResultMsg struct {
	Generation uint64
	Kind       Category
	Artists    []lastfm.Artist
	Albums     []lastfm.Album
	Tracks     []lastfm.Track
	Err        error
}

// Coordinator owns the search state. It is driven from a single goroutine
// (the Bubble Tea update loop or Drain): the returned commands run elsewhere
// and report back through Update.
type Coordinator struct {
	searcher  Searcher
	location  Location
	log       *zap.Logger
	state     State
	pending   int
	cancel    context.CancelFunc
	batchID   string
	observers []func(State)
}

// New creates a coordinator. location may be nil.
func New(searcher Searcher, location Location, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		searcher: searcher,
		location: location,
		log:      log,
	}
}

// Init restores the search stored in the location, if any.
func (c *Coordinator) Init() tea.Cmd {
	if c.location == nil {
		return nil
	}
	link, ok := c.location.Get()
	if !ok {
		return nil
	}
	return c.Open(link)
}

// Open starts a search for link's query in link's category as one batch.
// An invalid category falls back to All; a blank query is ignored.
func (c *Coordinator) Open(link Link) tea.Cmd {
	query := strings.TrimSpace(link.Query)
	if query == "" {
		return nil
	}
	if !link.Category.Valid() {
		link.Category = All
	}
	c.state.Category = link.Category
	c.state.Query = query
	return c.start()
}

// Submit starts a search for query in the current category. A blank query
// is ignored.
func (c *Coordinator) Submit(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	c.state.Query = query
	return c.start()
}

// ChangeCategory switches category and re-runs the current query. Without a
// query only the category is recorded.
func (c *Coordinator) ChangeCategory(category Category) tea.Cmd {
	if !category.Valid() || category == c.state.Category {
		return nil
	}
	c.state.Category = category
	if c.state.Query == "" {
		c.publish()
		return nil
	}
	return c.start()
}

// Retry re-runs the current query and category.
func (c *Coordinator) Retry() tea.Cmd {
	if c.state.Query == "" {
		return nil
	}
	return c.start()
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() State {
	s := c.state
	s.Artists = slices.Clone(s.Artists)
	s.Albums = slices.Clone(s.Albums)
	s.Tracks = slices.Clone(s.Tracks)
	return s
}

// Observe registers fn to be called with a snapshot after every change.
func (c *Coordinator) Observe(fn func(State)) {
	c.observers = append(c.observers, fn)
}

// Close cancels the in-flight batch, if any.
func (c *Coordinator) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Update applies a sub-query result. It reports whether the state changed;
// results of superseded batches are dropped.
func (c *Coordinator) Update(msg tea.Msg) bool {
	res, ok := msg.(ResultMsg)
	if !ok {
		return false
	}
	if res.Generation != c.state.Generation || c.state.Status != Pending {
		c.log.Debug("dropping stale search result",
			zap.Uint64("generation", res.Generation),
			zap.Uint64("current", c.state.Generation),
			zap.Stringer("kind", res.Kind),
		)
		return false
	}
	if !res.Kind.Valid() || !c.state.loading[res.Kind] {
		return false
	}

	c.state.loading[res.Kind] = false
	c.pending--

	switch {
	case res.Err != nil && c.state.Category == All:
		c.log.Warn("search sub-query failed",
			zap.String("batch", c.batchID),
			zap.Stringer("kind", res.Kind),
			zap.Error(res.Err),
		)
	case res.Err != nil:
		c.log.Error("search failed",
			zap.String("batch", c.batchID),
			zap.Stringer("kind", res.Kind),
			zap.Error(res.Err),
		)
		c.state.Err = res.Err
	default:
		switch res.Kind {
		case Artists:
			c.state.Artists = res.Artists
		case Albums:
			c.state.Albums = res.Albums
		case Tracks:
			c.state.Tracks = res.Tracks
		}
	}

	if c.pending <= 0 {
		c.settle()
	}
	c.publish()
	return true
}

func (c *Coordinator) start() tea.Cmd {
	c.Close()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.state.Generation++
	c.state.Status = Pending
	c.state.Err = nil
	c.state.Artists = nil
	c.state.Albums = nil
	c.state.Tracks = nil
	c.state.loading = [numCategories]bool{}
	c.batchID = uuid.NewString()

	plan := Plan(c.state.Category)
	c.pending = len(plan)

	gen := c.state.Generation
	query := c.state.Query
	cmds := make([]tea.Cmd, 0, len(plan))
	for _, sq := range plan {
		c.state.loading[sq.Kind] = true
		cmds = append(cmds, c.fetch(ctx, gen, query, sq))
	}

	c.log.Info("search started",
		zap.String("batch", c.batchID),
		zap.Uint64("generation", gen),
		zap.String("query", query),
		zap.Stringer("category", c.state.Category),
	)

	c.syncLocation()
	c.publish()
	return tea.Batch(cmds...)
}

func (c *Coordinator) settle() {
	c.state.Status = Settled
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.log.Info("search settled",
		zap.String("batch", c.batchID),
		zap.Uint64("generation", c.state.Generation),
		zap.Int("artists", len(c.state.Artists)),
		zap.Int("albums", len(c.state.Albums)),
		zap.Int("tracks", len(c.state.Tracks)),
		zap.Bool("failed", c.state.Err != nil),
	)
	c.syncLocation()
}

func (c *Coordinator) fetch(ctx context.Context, gen uint64, query string, sq SubQuery) tea.Cmd {
	searcher := c.searcher
	return func() tea.Msg {
		msg := ResultMsg{Generation: gen, Kind: sq.Kind}
		switch sq.Kind {
		case Artists:
			msg.Artists, msg.Err = searcher.SearchArtists(ctx, query, sq.Limit)
		case Albums:
			msg.Albums, msg.Err = searcher.SearchAlbums(ctx, query, sq.Limit)
		case Tracks:
			msg.Tracks, msg.Err = searcher.SearchTracks(ctx, query, sq.Limit)
		}
		return msg
	}
}

func (c *Coordinator) syncLocation() {
	if c.location != nil {
		c.location.Set(c.state.Link())
	}
}

func (c *Coordinator) publish() {
	if len(c.observers) == 0 {
		return
	}
	s := c.Snapshot()
	for _, fn := range c.observers {
		fn(s)
	}
}
