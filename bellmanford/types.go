// SPDX-License-Identifier: MIT
// Package bellmanford: Distances, SlotState, Observer, options and sentinel errors.

package bellmanford

import (
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Unreachable marks a vertex with no path from the source. It is strictly
// greater than any finite distance the engine reports: core.Store bounds
// |weight| by MaxInt64/V, so a simple path of at most V-1 edges sums to at
// most (V-1)·MaxInt64/V < MaxInt64 and never collides with the sentinel.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates a nil *core.Store was passed to New or BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrInvalidSource indicates the source vertex is outside [0, V).
	ErrInvalidSource = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycle indicates a negative cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Distances is a distance vector indexed by vertex. Entries are either finite
// or Unreachable.
type Distances []int64

// Reachable reports whether v has a finite distance.
func (d Distances) Reachable(v int) bool {
	return v >= 0 && v < len(d) && d[v] != Unreachable
}

// Clone returns an independent copy.
func (d Distances) Clone() Distances {
	if d == nil {
		return nil
	}
	out := make(Distances, len(d))
	copy(out, d)

	return out
}

// SlotState is the lifecycle state of one source's cache slot.
type SlotState int

const (
	// Uncomputed: nothing cached for this source.
	Uncomputed SlotState = iota
	// Computing: a relaxation for this source is in flight.
	Computing
	// Computed: the row is fully populated and served from cache.
	Computed
	// Rejected: a negative cycle was found and WithRejectedMemo is on.
	Rejected
)

func (s SlotState) String() string {
	switch s {
	case Uncomputed:
		return "uncomputed"
	case Computing:
		return "computing"
	case Computed:
		return "computed"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Observer receives engine events. Implementations must be safe for
// concurrent use and must not call back into the Engine.
type Observer interface {
	OnCacheHit(source int)
	OnCacheMiss(source int)
	OnRelaxed(source int, elapsed time.Duration)
	OnNegativeCycle(source int)
}

// ResetObserver is optionally implemented by an Observer that wants to know
// when Engine.Reset clears the cache.
type ResetObserver interface {
	OnReset()
}

// nopObserver discards all events.
type nopObserver struct{}

func (nopObserver) OnCacheHit(int) {}
func (nopObserver) OnCacheMiss(int) {}
func (nopObserver) OnRelaxed(int, time.Duration) {}
func (nopObserver) OnNegativeCycle(int) {}

// Options configures an Engine.
//
// Logger       – structured logger for cache and cycle events (default: disabled).
// Observer     – event sink, e.g. a metrics collector (default: no-op).
// RejectedMemo – remember negative-cycle sources so repeats skip relaxation.
type Options struct {
	Logger       zerolog.Logger
	Observer     Observer
	RejectedMemo bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver sets the event sink. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithRejectedMemo caches a Rejected marker for sources that hit a negative
// cycle, so repeated queries fail fast without relaxing again.
func WithRejectedMemo() Option {
	return func(o *Options) {
		o.RejectedMemo = true
	}
}

// DefaultOptions returns Options with a disabled logger, a no-op observer and
// no rejected memo.
func DefaultOptions() Options {
	return Options{
		Logger:       zerolog.Nop(),
		Observer:     nopObserver{},
		RejectedMemo: false,
	}
}
