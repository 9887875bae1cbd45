// Package cli holds the lfmbrowse commands: the interactive browser and the
// plain-text search and charts commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/app"
	"github.com/llehouerou/lfmbrowse/internal/search"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "lfmbrowse [link]",
	Short: "Browse Last.fm charts and search artists, albums and tracks.",
	Long: `lfmbrowse is a terminal browser for Last.fm metadata.

Without arguments it restores the last search. A share link such as
"?q=daft+punk&tab=artists" opens that search instead.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var shared *search.Link
		if len(args) == 1 {
			link, ok := search.ParseLink(args[0])
			if !ok {
				return fmt.Errorf("invalid link %q: expected ?q=<query>&tab=<top|artists|albums|tracks>", args[0])
			}
			shared = &link
		}
		return runBrowser(cmd.Context(), shared)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(searchCmd, chartsCmd)
}

// Execute runs the root command and exits on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBrowser(ctx context.Context, shared *search.Link) error {
	e, err := openEnv(ctx, false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deps := app.Deps{
		Ctx:        ctx,
		Searcher:   e.client,
		Loader:     e.loader,
		Relations:  e.cache,
		State:      e.state,
		SharedLink: shared,
		Log:        e.log,
	}
	// A nil *Discovery must not end up in the interface.
	if e.discovery != nil {
		deps.Discovery = e.discovery
	}

	e.log.Info("starting browser", zap.Bool("shared_link", shared != nil))
	p := tea.NewProgram(app.New(deps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
