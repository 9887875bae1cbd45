package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/ui/render"
)

var searchTab string

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search Last.fm and print the results",
	Example: `  lfmbrowse search daft punk
  lfmbrowse search --tab tracks one more time`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, ok := search.ParseCategory(searchTab)
		if !ok {
			return fmt.Errorf("unknown tab %q: expected top, artists, albums or tracks", searchTab)
		}
		link := search.Link{Query: strings.Join(args, " "), Category: category}

		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		return runSearch(cmd.Context(), cmd.OutOrStdout(), e.client, link, e.log)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchTab, "tab", "t", search.All.String(),
		"result category (top, artists, albums, tracks)")
}

// runSearch runs link's search to completion and prints it to w.
func runSearch(ctx context.Context, w io.Writer, searcher search.Searcher, link search.Link, log *zap.Logger) error {
	coord := search.New(searcher, nil, log.Named("search"))
	defer coord.Close()

	if err := search.Drain(ctx, coord, coord.Open(link)); err != nil {
		return err
	}
	s := coord.Snapshot()
	if s.Err != nil {
		return fmt.Errorf("search %s: %w", s.Category.Label(), s.Err)
	}
	writeSearch(w, s)
	return nil
}

func writeSearch(w io.Writer, s search.State) {
	if len(s.Artists)+len(s.Albums)+len(s.Tracks) == 0 {
		fmt.Fprintf(w, "No results for %q\n", s.Query)
		return
	}

	if len(s.Artists) > 0 {
		fmt.Fprintln(w, "Artists")
		for i, a := range s.Artists {
			writeRow(w, i, render.Sanitize(a.Name), render.Listeners(int64(a.Listeners)))
		}
	}
	if len(s.Albums) > 0 {
		if len(s.Artists) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "Albums")
		for i, a := range s.Albums {
			writeRow(w, i, render.Sanitize(a.Name)+" · "+render.Sanitize(a.Artist), "")
		}
	}
	if len(s.Tracks) > 0 {
		if len(s.Artists)+len(s.Albums) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "Tracks")
		for i, t := range s.Tracks {
			writeRow(w, i, render.Sanitize(t.Name)+" · "+render.Sanitize(t.Artist.Name),
				render.Listeners(int64(t.Listeners)))
		}
	}

	fmt.Fprintf(w, "\nLink: %s\n", s.Link())
}

func writeRow(w io.Writer, i int, text, detail string) {
	if detail == "" {
		fmt.Fprintf(w, "%3d. %s\n", i+1, text)
		return
	}
	fmt.Fprintf(w, "%3d. %s (%s)\n", i+1, text, detail)
}
