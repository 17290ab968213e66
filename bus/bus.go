// SPDX-License-Identifier: EPL-2.0

// Package bus is the publish/subscribe channel waveforms and players talk
// over. Channel is the contract; Bus is an in-memory implementation.
package bus

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Topics exchanged between a player and its waveforms.
const (
	// TopicPlaying carries (Track, PlaybackInfo) on every playback tick.
	TopicPlaying = "player.playing"
	// TopicPause carries no arguments.
	TopicPause = "player.pause"
	// TopicStop carries no arguments.
	TopicStop = "player.stop"
	// TopicSeek is published by a waveform with (Track, seconds).
	TopicSeek = "waveform.click"
)

// Handler receives the arguments of a published message.
type Handler func(args ...any)

// Handle identifies one subscription. The zero Handle is never issued.
type Handle struct {
	topic string
	id    uint64
}

func (h Handle) Topic() string { return h.topic }

// Channel is the event channel a waveform consumes.
type Channel interface {
	Subscribe(topic string, fn Handler) Handle
	// Unsubscribe reports whether h was live.
	Unsubscribe(h Handle) bool
	Publish(topic string, args ...any)
}

type subscription struct {
	id     uint64
	fn     Handler
	active atomic.Bool
}

// Bus delivers messages synchronously, in publish order, to subscribers in
// subscribe order. Handlers may subscribe, unsubscribe and publish from
// within a delivery; a subscription added during a delivery does not
// receive that message, and one removed during a delivery stops receiving
// immediately.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	topics map[string][]*subscription
	log    *slog.Logger
}

var _ Channel = (*Bus)(nil)

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bus) { b.log = l }
}

func New(opts ...Option) *Bus {
	b := &Bus{
		topics: make(map[string][]*subscription),
		log:    slog.Default(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Bus) Subscribe(topic string, fn Handler) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	s := &subscription{id: b.nextID, fn: fn}
	s.active.Store(true)
	b.topics[topic] = append(b.topics[topic], s)

	return Handle{topic: topic, id: s.id}
}

func (b *Bus) Unsubscribe(h Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[h.topic]
	for i, s := range subs {
		if s.id != h.id {
			continue
		}
		s.active.Store(false)

		// Copy so in-flight deliveries keep their snapshot intact.
		next := make([]*subscription, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(b.topics, h.topic)
		} else {
			b.topics[h.topic] = next
		}
		return true
	}

	return false
}

func (b *Bus) Publish(topic string, args ...any) {
	b.mu.Lock()
	subs := b.topics[topic]
	b.mu.Unlock()

	b.log.Debug("publish", "topic", topic, "subscribers", len(subs))

	for _, s := range subs {
		if !s.active.Load() {
			continue
		}
		s.fn(args...)
	}
}

// Subscribers returns the number of live subscriptions on topic.
func (b *Bus) Subscribers(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.topics[topic])
}
