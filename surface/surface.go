// SPDX-License-Identifier: EPL-2.0

// Package surface defines the drawing target a waveform renders into and
// ships Document, an in-memory SVG tree implementing it.
//
// A Surface is shared: each waveform only touches the nodes it created and
// the pointer bindings it registered.
package surface

// Kind names a drawing primitive.
type Kind string

const (
	SVG   Kind = "svg"
	Group Kind = "g"
	Path  Kind = "path"
	Rect  Kind = "rect"
	Text  Kind = "text"
)

// Box is the measured pixel box of a surface. Left and Top are the page
// offsets used to turn page coordinates into local ones.
type Box struct {
	Width  float64
	Height float64
	Left   float64
	Top    float64
}

// PointerKind distinguishes pointer notifications.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerLeave
	PointerDown
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerLeave:
		return "leave"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent carries page coordinates.
type PointerEvent struct {
	Kind  PointerKind
	PageX float64
	PageY float64
}

// PointerFunc receives pointer events bound to a surface.
type PointerFunc func(PointerEvent)

// Node is a drawing primitive. Setters return the node for chaining.
type Node interface {
	Append(kind Kind) Node
	Attr(name string, value any) Node
	// Class replaces the class list with the space separated names.
	Class(names string) Node
	// Classed adds or removes a single class.
	Classed(name string, on bool) Node
	Text(s string) Node
	Remove()
}

// Surface is the external drawing target.
type Surface interface {
	Box() Box
	// Empty removes every child node.
	Empty()
	Append(kind Kind) Node
	// Bind registers fn for pointer events and returns a function removing
	// that registration. The returned function is safe to call repeatedly.
	Bind(fn PointerFunc) (unbind func())
}
