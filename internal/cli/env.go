package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/cache"
	"github.com/llehouerou/lfmbrowse/internal/charts"
	"github.com/llehouerou/lfmbrowse/internal/config"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
	"github.com/llehouerou/lfmbrowse/internal/logging"
	"github.com/llehouerou/lfmbrowse/internal/state"
)

var errNoAPIKey = errors.New("no Last.fm API key: set " + config.EnvAPIKey +
	" or lastfm.api_key in ~/.config/lfmbrowse/config.toml")

// env holds everything a command needs, opened from the user's config.
type env struct {
	cfg       *config.Config
	log       *zap.Logger
	closeLog  func() error
	state     *state.Manager
	cache     *cache.Cache
	client    *lastfm.Client
	discovery *lastfm.Discovery // nil without an API secret
	loader    *charts.Loader
}

// openEnv loads the config and opens the logger, the state database and the
// Last.fm client. Non-interactive commands set stderr to see warnings.
func openEnv(ctx context.Context, stderr bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasLastfmConfig() {
		return nil, errNoAPIKey
	}

	logCfg := cfg.GetLogConfig()
	if logLevel != "" {
		logCfg.Level = logLevel
	}
	log, closeLog, err := logging.New(logging.Options{
		Level:      logCfg.Level,
		File:       logCfg.File,
		MaxSizeMB:  logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAgeDays: logCfg.MaxAgeDays,
		Stderr:     stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	mgr, err := state.Open()
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open state: %w", err)
	}

	chartsCfg := cfg.GetChartsConfig()
	store := cache.New(mgr.DB(), chartsCfg.TagCacheTTLDays)
	if err := store.CleanExpired(ctx); err != nil {
		log.Warn("cache cleanup failed", zap.Error(err))
	}

	lfmCfg := cfg.GetLastfmConfig()
	client := lastfm.NewClient(lfmCfg.APIKey,
		lastfm.WithBaseURL(lfmCfg.BaseURL),
		lastfm.WithTimeout(lfmCfg.Timeout()),
		lastfm.WithLogger(log.Named("lastfm")),
	)

	e := &env{
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
		state:    mgr,
		cache:    store,
		client:   client,
		loader: charts.NewLoader(client, store, charts.Options{
			ArtistsLimit:   chartsCfg.ArtistsLimit,
			TracksLimit:    chartsCfg.TracksLimit,
			TagConcurrency: chartsCfg.TagConcurrency,
		}, log.Named("charts")),
	}
	if cfg.HasDiscoveryConfig() {
		e.discovery = lastfm.NewDiscovery(lfmCfg.APIKey, lfmCfg.APISecret)
	}
	return e, nil
}

// Close flushes the state database and the log.
func (e *env) Close() {
	if err := e.state.Close(); err != nil {
		e.log.Error("close state", zap.Error(err))
	}
	_ = e.log.Sync()
	_ = e.closeLog()
}
