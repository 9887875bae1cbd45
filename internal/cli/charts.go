package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/lfmbrowse/internal/charts"
	"github.com/llehouerou/lfmbrowse/internal/ui/render"
)

var chartsCmd = &cobra.Command{
	Use:          "charts",
	Short:        "Print the global top artists and top tracks",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		return runCharts(cmd.Context(), cmd.OutOrStdout(), e.loader)
	},
}

// runCharts loads both chart pages concurrently and prints them to w.
func runCharts(ctx context.Context, w io.Writer, loader *charts.Loader) error {
	var (
		artists []charts.ArtistCard
		tracks  []charts.TrackCard
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artists, err = loader.Artists(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tracks, err = loader.Tracks(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	writeCharts(w, artists, tracks)
	return nil
}

func writeCharts(w io.Writer, artists []charts.ArtistCard, tracks []charts.TrackCard) {
	fmt.Fprintln(w, "Top Artists")
	for i, a := range artists {
		writeRow(w, i, render.Sanitize(a.Artist.Name), render.Listeners(int64(a.Artist.Listeners)))
		writeGenres(w, a.Genres)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Tracks")
	for i, t := range tracks {
		writeRow(w, i, render.Sanitize(t.Track.Name)+" · "+render.Sanitize(t.Track.Artist.Name),
			render.Listeners(int64(t.Track.Listeners)))
		writeGenres(w, t.Genres)
	}
}

func writeGenres(w io.Writer, genres string) {
	if genres != "" {
		fmt.Fprintf(w, "     %s\n", genres)
	}
}
