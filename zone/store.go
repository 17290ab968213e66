// SPDX-License-Identifier: EPL-2.0

// Package zone keeps the highlighted time ranges of a waveform: any number
// of committed zones plus at most one pending zone under construction.
package zone

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// MinSize is the width in pixels a pending zone must exceed to commit.
const MinSize = 5.0

// Zone is a committed highlight range with both pixel and time bounds.
type Zone struct {
	ID        string
	Key       int64 // creation time, unix milliseconds
	Start     float64
	End       float64
	StartTime float64
	EndTime   float64
}

// Width returns the pixel width of the zone.
func (z Zone) Width() float64 { return z.End - z.Start }

// Pending is the range being dragged out. It has pixel bounds only.
type Pending struct {
	Start float64
	End   float64
}

// Width returns the pixel width of the pending range.
func (p Pending) Width() float64 { return p.End - p.Start }

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used for zone keys.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces the zone ID generator.
func WithIDs(next func() string) Option {
	return func(s *Store) { s.newID = next }
}

// Store is not safe for concurrent use; its owner serialises access.
type Store struct {
	committed map[int64]Zone
	pending   *Pending

	now   func() time.Time
	newID func() string
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		committed: make(map[int64]Zone),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Begin starts a new pending zone at x, replacing any previous one.
func (s *Store) Begin(x float64) Pending {
	s.pending = &Pending{Start: x, End: x}
	return *s.pending
}

// Pending returns the zone under construction, if any.
func (s *Store) Pending() (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}
	return *s.pending, true
}

// NextStart returns the smallest committed start strictly greater than x,
// or +Inf when there is none.
func (s *Store) NextStart(x float64) float64 {
	limit := math.Inf(1)
	for _, z := range s.committed {
		if z.Start > x && z.Start < limit {
			limit = z.Start
		}
	}
	return limit
}

// Extend moves the end of the pending zone towards x. The end never goes
// before the pending start nor past the start of the next committed zone.
func (s *Store) Extend(x float64) (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}

	limit := s.NextStart(s.pending.Start)
	s.pending.End = max(s.pending.Start, min(x, limit))

	return *s.pending, true
}

// Discard drops the pending zone and reports whether there was one.
func (s *Store) Discard() bool {
	had := s.pending != nil
	s.pending = nil
	return had
}

// Commit finalises the pending zone when it is wider than MinSize, using
// toTime to convert pixel bounds into seconds. The pending zone is cleared
// whether or not it commits.
func (s *Store) Commit(toTime func(px float64) float64) (Zone, bool) {
	p := s.pending
	s.pending = nil

	if p == nil || p.End-p.Start <= MinSize {
		return Zone{}, false
	}

	key := s.now().UnixMilli()
	for {
		if _, taken := s.committed[key]; !taken {
			break
		}
		key++
	}

	z := Zone{
		ID:        s.newID(),
		Key:       key,
		Start:     p.Start,
		End:       p.End,
		StartTime: toTime(p.Start),
		EndTime:   toTime(p.End),
	}
	s.committed[key] = z

	return z, true
}

// Zones returns the committed zones ordered by start, then creation.
func (s *Store) Zones() []Zone {
	out := make([]Zone, 0, len(s.committed))
	for _, z := range s.committed {
		out = append(out, z)
	}
	slices.SortFunc(out, func(a, b Zone) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// Len returns the number of committed zones.
func (s *Store) Len() int { return len(s.committed) }

// Remove deletes the committed zone with the given ID.
func (s *Store) Remove(id string) bool {
	for k, z := range s.committed {
		if z.ID == id {
			delete(s.committed, k)
			return true
		}
	}
	return false
}

// Clear drops every committed zone and the pending one.
func (s *Store) Clear() {
	clear(s.committed)
	s.pending = nil
}

// Rescale recomputes committed pixel bounds from their time bounds after the
// time scale's range changed.
func (s *Store) Rescale(toPixel func(seconds float64) float64) {
	for k, z := range s.committed {
		z.Start = toPixel(z.StartTime)
		z.End = toPixel(z.EndTime)
		s.committed[k] = z
	}
}
