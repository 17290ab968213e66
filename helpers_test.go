// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"sync"
	"time"

	"github.com/ik5/audwave/scale"
	"github.com/ik5/audwave/surface"
)

// countingSurface records redraws and path writes on top of a Document.
type countingSurface struct {
	*surface.Document

	redraws int
	paths   []string
}

func newCountingSurface(box surface.Box) *countingSurface {
	return &countingSurface{Document: surface.NewDocument(box)}
}

func (c *countingSurface) Empty() {
	c.redraws++
	c.Document.Empty()
}

func (c *countingSurface) Append(kind surface.Kind) surface.Node {
	return &countingNode{Node: c.Document.Append(kind), s: c}
}

type countingNode struct {
	surface.Node
	s *countingSurface
}

func (n *countingNode) Append(kind surface.Kind) surface.Node {
	return &countingNode{Node: n.Node.Append(kind), s: n.s}
}

func (n *countingNode) Attr(name string, value any) surface.Node {
	if name == "d" {
		n.s.paths = append(n.s.paths, value.(string))
	}
	n.Node.Attr(name, value)
	return n
}

func (n *countingNode) Class(names string) surface.Node {
	n.Node.Class(names)
	return n
}

func (n *countingNode) Classed(name string, on bool) surface.Node {
	n.Node.Classed(name, on)
	return n
}

func (n *countingNode) Text(s string) surface.Node {
	n.Node.Text(s)
	return n
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs timer i even when it was stopped, as a timer racing Stop would.
func (c *fakeClock) fire(i int) {
	c.mu.Lock()
	t := c.timers[i]
	c.mu.Unlock()

	t.f()
}

func (c *fakeClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

// alternating returns n scalar samples 1, -1, 0.5, -0.5, ...
func alternating(n int) []scale.Sample {
	out := make([]scale.Sample, n)
	vals := []float64{1, -1, 0.5, -0.5}
	for i := range out {
		out[i] = scale.Scalar(vals[i%len(vals)])
	}
	return out
}

func testData(id string) Data {
	return Data{ID: id, Duration: 120, Samples: alternating(240)}
}

var testBox = surface.Box{Width: 600, Left: 20, Top: 100}

func move(x, y float64) surface.PointerEvent {
	return surface.PointerEvent{Kind: surface.PointerMove, PageX: x + testBox.Left, PageY: y + testBox.Top}
}

func press(x, y float64) surface.PointerEvent {
	return surface.PointerEvent{Kind: surface.PointerDown, PageX: x + testBox.Left, PageY: y + testBox.Top}
}

func release() surface.PointerEvent {
	return surface.PointerEvent{Kind: surface.PointerUp}
}
