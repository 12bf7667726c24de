// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the sourcing loop: execute catalog queries against
// a search engine, parse hits into candidates, filter, classify, dedup,
// and write survivors to the configured sinks. Queries run sequentially
// with jittered pacing so a run looks like a patient human, not a scraper.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/a9austin/sdr-sourcer/internal/classify"
	"github.com/a9austin/sdr-sourcer/internal/filter"
	"github.com/a9austin/sdr-sourcer/internal/parse"
	"github.com/a9austin/sdr-sourcer/internal/search"
	"github.com/a9austin/sdr-sourcer/internal/sink"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// Defaults for pacing when the config leaves them zero.
const (
	defaultMinDelay   = 2 * time.Second
	defaultMaxDelay   = 4 * time.Second
	defaultBatchSize  = 8
	defaultBatchPause = 10 * time.Second
	defaultStatus     = "New"
)

// Session carries dedup state and counters across one sourcing run. The
// seen-URL set can be preloaded from the ledger, the CSV backup, and the
// spreadsheet so re-runs never emit a candidate twice.
type Session struct {
	seen map[string]bool

	// Accepted holds every candidate written this run, in order.
	Accepted []*types.Candidate

	// Rejections counts filtered candidates by rejecting rule name.
	Rejections map[string]int

	Queries        int
	Hits           int
	Duplicates     int
	QuotaExhausted bool
	Started        time.Time
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		seen:       make(map[string]bool),
		Rejections: make(map[string]int),
		Started:    time.Now(),
	}
}

// Preload marks URLs as already seen. Keys must be normalized with
// parse.CleanURL; the ledger, CSV loader, and sheet reader all store them
// that way.
func (s *Session) Preload(urls map[string]bool) {
	for u := range urls {
		s.seen[u] = true
	}
}

// Seen reports whether a normalized URL was already recorded.
func (s *Session) Seen(url string) bool { return s.seen[url] }

// SeenCount returns the size of the dedup set, preloads included.
func (s *Session) SeenCount() int { return len(s.seen) }

// ByRole counts accepted candidates per role fit label.
func (s *Session) ByRole() map[string]int {
	counts := make(map[string]int)
	for _, c := range s.Accepted {
		counts[string(c.RoleFit)]++
	}
	return counts
}

// Config bundles the knobs Run needs.
type Config struct {
	Search   types.SearchConfig
	Pipeline types.PipelineConfig

	// Now is the clock for DateAdded stamps. Nil means time.Now.
	Now func() time.Time
}

func (cfg *Config) now() time.Time {
	if cfg.Now != nil {
		return cfg.Now()
	}
	return time.Now()
}

// Run executes the query specs sequentially. Progress goes to w.
//
// Quota exhaustion from the engine stops the run early but is not an
// error: everything sourced before the halt is already in the sinks, and
// the session records the halt for the run report. A sink failure loses
// that record only: the run logs it, leaves the URL unmarked so a later
// run can retry, and moves on to the next hit.
func Run(ctx context.Context, engine search.Engine, specs []types.QuerySpec, sess *Session, chain *filter.Chain, out sink.Sink, cfg Config, w io.Writer) error {
	minDelay := cfg.Pipeline.MinDelay
	if minDelay <= 0 {
		minDelay = defaultMinDelay
	}
	maxDelay := cfg.Pipeline.MaxDelay
	if maxDelay < minDelay {
		maxDelay = minDelay + defaultMaxDelay - defaultMinDelay
	}
	batchSize := cfg.Pipeline.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	batchPause := cfg.Pipeline.BatchPause
	if batchPause <= 0 {
		batchPause = defaultBatchPause
	}

	// The limiter enforces the minimum spacing; extra random jitter on top
	// stretches it toward maxDelay.
	limiter := rate.NewLimiter(rate.Every(minDelay), 1)

	for i, spec := range specs {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		if i > 0 {
			if err := sleep(ctx, jitter(minDelay, maxDelay)-minDelay); err != nil {
				return err
			}
			if i%batchSize == 0 {
				fmt.Fprintf(w, "batch done, pausing %s\n", batchPause)
				if err := sleep(ctx, batchPause); err != nil {
					return err
				}
			}
		}

		fmt.Fprintf(w, "query %d/%d [%s] %s\n", i+1, len(specs), spec.Role, spec.Query)

		results, err := engine.Search(ctx, spec.Query, cfg.Search)
		if errors.Is(err, search.ErrQuotaExhausted) {
			sess.QuotaExhausted = true
			fmt.Fprintf(w, "search quota exhausted after %d queries, stopping\n", sess.Queries)
			return nil
		}
		if err != nil {
			fmt.Fprintf(w, "warn: query failed: %v\n", err)
			continue
		}
		sess.Queries++

		accepted := sess.absorb(ctx, results, spec, chain, out, cfg, w)
		fmt.Fprintf(w, "  %d results, %d new candidates\n", len(results), accepted)
	}
	return nil
}

// absorb runs one query's results through parse, filter, classify, dedup,
// and the sink. It returns the number of candidates accepted. A sink
// failure drops that record: the URL stays unmarked so a later run picks
// it up again.
func (s *Session) absorb(ctx context.Context, results []parse.Result, spec types.QuerySpec, chain *filter.Chain, out sink.Sink, cfg Config, w io.Writer) int {
	accepted := 0
	for _, hit := range results {
		s.Hits++

		c, ok := parse.Candidate(hit, spec.Query)
		if !ok {
			continue
		}
		if s.seen[c.LinkedInURL] {
			s.Duplicates++
			continue
		}
		if pass, rule := chain.Accept(c, spec.Role); !pass {
			s.Rejections[rule]++
			continue
		}

		c.RoleFit = classify.Role(c.Headline)
		c.DateAdded = cfg.now()
		c.Status = defaultStatus

		if err := out.Append(ctx, c); err != nil {
			fmt.Fprintf(w, "warn: writing candidate %s: %v\n", c.LinkedInURL, err)
			continue
		}

		s.seen[c.LinkedInURL] = true
		s.Accepted = append(s.Accepted, c)
		accepted++
	}
	return accepted
}

// jitter picks a random duration in [min, max].
func jitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
