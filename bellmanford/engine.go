// SPDX-License-Identifier: MIT
// Package bellmanford: Engine, the memoizing query front end. Cache reads
// are shared under mu; misses for one source are coalesced by singleflight.

package bellmanford

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/roadpath/core"
)

// Engine answers shortest-distance queries against one frozen Store and
// memoizes every successful result per source.
type Engine struct {
	g     *core.Store
	edges []core.Edge // snapshot taken after freeze
	v     int
	opts  Options

	mu     sync.RWMutex // guards cache
	cache  *cache
	flight singleflight.Group // coalesces concurrent misses per source
}

// New freezes g and returns an Engine with an empty cache sized V×V.
//
// Returns ErrNilGraph for a nil store and core.ErrUnpopulatedEdge if g still
// has empty edge slots.
func New(g *core.Store, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := g.Freeze(); err != nil {
		return nil, err
	}

	e := &Engine{
		g:     g,
		edges: g.Edges(),
		v:     g.VertexCount(),
		opts:  cfg,
		cache: newCache(g.VertexCount()),
	}
	cfg.Logger.Debug().
		Int("vertices", e.v).
		Int("edges", len(e.edges)).
		Msg("engine ready")

	return e, nil
}

// Graph returns the Store the engine was built over.
func (e *Engine) Graph() *core.Store { return e.g }

// Query returns shortest distances from source.
//
// A cache hit returns a copy of the stored row with no recomputation. A miss
// relaxes the graph; on success the row is cached and a copy returned. A
// negative cycle yields ErrNegativeCycle and leaves the cache untouched
// (unless WithRejectedMemo is on, in which case the slot becomes Rejected).
//
// Complexity: O(V) on a hit, O(V·E) on a miss.
func (e *Engine) Query(ctx context.Context, source int) (Distances, error) {
	d, _, err := e.Lookup(ctx, source)

	return d, err
}

// Lookup is Query that also reports whether the answer came from the cache.
func (e *Engine) Lookup(ctx context.Context, source int) (Distances, bool, error) {
	if err := checkSource(source, e.v); err != nil {
		return nil, false, err
	}
	log := e.opts.Logger.With().Int("source", source).Logger()

	e.mu.RLock()
	row, ok := e.cache.row(source)
	state := e.cache.state[source]
	e.mu.RUnlock()

	if ok {
		e.opts.Observer.OnCacheHit(source)
		log.Debug().Msg("cache hit")
		return row, true, nil
	}
	if state == Rejected {
		e.opts.Observer.OnNegativeCycle(source)
		log.Debug().Msg("negative cycle (memoized)")
		return nil, false, fmt.Errorf("%w: source %d (memoized)", ErrNegativeCycle, source)
	}

	e.opts.Observer.OnCacheMiss(source)
	log.Debug().Msg("cache miss")

	key := strconv.Itoa(source)
	var (
		res    interface{}
		err    error
		shared bool
	)
	for {
		res, err, shared = e.flight.Do(key, func() (interface{}, error) {
			return e.compute(ctx, source)
		})
		// A coalesced flight canceled by another caller's ctx says nothing
		// about ours; run again under our own ctx.
		if shared && isContextErr(err) && ctx.Err() == nil {
			log.Debug().Err(err).Msg("shared computation canceled, retrying")
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, ErrNegativeCycle) {
			e.opts.Observer.OnNegativeCycle(source)
			log.Warn().Err(err).Msg("negative cycle")
		}
		return nil, false, err
	}
	if shared {
		log.Debug().Msg("coalesced with in-flight computation")
	}

	return res.(Distances).Clone(), false, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// compute runs one relaxation for source and publishes the outcome to the
// cache. Only one compute per source runs at a time (singleflight).
func (e *Engine) compute(ctx context.Context, source int) (Distances, error) {
	e.mu.Lock()
	if row, ok := e.cache.row(source); ok {
		e.mu.Unlock()
		return row, nil
	}
	e.cache.state[source] = Computing
	e.mu.Unlock()

	start := time.Now()
	r := &runner{edges: e.edges, v: e.v, source: source}
	r.init()
	err := r.process(ctx)
	if err == nil {
		err = r.detectCycle()
	}
	elapsed := time.Since(start)

	e.mu.Lock()
	switch {
	case err == nil:
		e.cache.store(source, r.dist)
	case errors.Is(err, ErrNegativeCycle) && e.opts.RejectedMemo:
		e.cache.state[source] = Rejected
	default:
		e.cache.state[source] = Uncomputed
	}
	e.mu.Unlock()

	if err != nil {
		return nil, err
	}

	e.opts.Observer.OnRelaxed(source, elapsed)
	e.opts.Logger.Debug().
		Int("source", source).
		Int("passes", r.passes).
		Dur("elapsed", elapsed).
		Msg("relaxed")

	return r.dist, nil
}

// Cached reports whether source has a valid cache row.
// Out-of-range sources report false.
func (e *Engine) Cached(source int) bool {
	if source < 0 || source >= e.v {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.cache.row(source)

	return ok
}

// State returns the cache slot state of source (Uncomputed when out of range).
func (e *Engine) State(source int) SlotState {
	if source < 0 || source >= e.v {
		return Uncomputed
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.cache.state[source]
}

// Reset clears the whole cache, including Rejected markers.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.cache.reset()
	e.mu.Unlock()

	if r, ok := e.opts.Observer.(ResetObserver); ok {
		r.OnReset()
	}
	e.opts.Logger.Debug().Msg("cache reset")
}
