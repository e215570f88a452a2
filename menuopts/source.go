// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package menuopts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/kvstore"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/metrics"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
)

var (
	ErrFetchFailed = errors.New("menu options fetch failed")
	ErrParseFailed = errors.New("menu options parse failed")
	ErrNoCache     = errors.New("no cached menu options")
)

// CacheKey is the single global storage key for the last good document
const CacheKey = "menu_options:cache"

// Result is a loaded option document and whether it came from the cache
type Result struct {
	Options   models.MenuOptions
	FromCache bool
}

// Source loads menu options, falling back to the last good copy
type Source struct {
	fetcher Fetcher
	store   kvstore.Store
	metrics metrics.Recorder
}

func NewSource(fetcher Fetcher, store kvstore.Store, rec metrics.Recorder) *Source {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Source{fetcher: fetcher, store: store, metrics: rec}
}

// Load fetches and parses the document. On success the parsed options are
// cached. On fetch or parse failure the cached copy is returned with
// FromCache set; with no cache the original failure is returned, joined
// with ErrNoCache.
func (s *Source) Load(ctx context.Context) (Result, error) {
	options, err := s.fetchLive(ctx)
	if err == nil {
		s.writeCache(ctx, options)
		s.metrics.RecordMenuFetch(metrics.FetchLive)
		return Result{Options: options}, nil
	}

	slog.Warn("menu options unavailable, trying cache", "error", err)

	cached, cacheErr := s.readCache(ctx)
	if cacheErr != nil {
		s.metrics.RecordMenuFetch(metrics.FetchFailed)
		return Result{}, errors.Join(err, cacheErr)
	}

	s.metrics.RecordMenuFetch(metrics.FetchCache)
	return Result{Options: cached, FromCache: true}, nil
}

func (s *Source) fetchLive(ctx context.Context) (models.MenuOptions, error) {
	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func (s *Source) writeCache(ctx context.Context, options models.MenuOptions) {
	raw, err := json.Marshal(options)
	if err != nil {
		slog.Warn("failed to encode menu options cache", "error", err)
		return
	}
	if err := s.store.Set(ctx, CacheKey, raw); err != nil {
		slog.Warn("failed to write menu options cache", "error", err)
	}
}

func (s *Source) readCache(ctx context.Context) (models.MenuOptions, error) {
	raw, found, err := s.store.Get(ctx, CacheKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCache, err)
	}
	if !found {
		return nil, ErrNoCache
	}

	var options models.MenuOptions
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, fmt.Errorf("%w: unreadable cache: %w", ErrNoCache, err)
	}

	// Older caches stored bare names without ids
	for _, meals := range options {
		for _, opts := range meals {
			for k := range opts {
				if opts[k].ID == "" {
					opts[k].ID = fmt.Sprintf("opt-%d", k)
				}
			}
		}
	}
	return options, nil
}
