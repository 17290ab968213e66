// SPDX-License-Identifier: EPL-2.0

package surface

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Document is an in-memory Surface. Hosts feed it pointer events through
// Dispatch and serialise it with WriteSVG.
type Document struct {
	mu       sync.Mutex
	box      Box
	children []*Element

	nextBinding int
	bindings    map[int]PointerFunc
}

var _ Surface = (*Document)(nil)

func NewDocument(box Box) *Document {
	return &Document{
		box:      box,
		bindings: make(map[int]PointerFunc),
	}
}

func (d *Document) Box() Box {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.box
}

// Resize replaces the measured box. Callers redraw afterwards.
func (d *Document) Resize(b Box) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.box = b
}

func (d *Document) Empty() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.children = nil
}

func (d *Document) Append(kind Kind) Node {
	d.mu.Lock()
	defer d.mu.Unlock()

	e := &Element{doc: d, kind: kind}
	d.children = append(d.children, e)

	return e
}

func (d *Document) Bind(fn PointerFunc) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextBinding
	d.nextBinding++
	d.bindings[id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		delete(d.bindings, id)
	}
}

// Bindings returns the number of live pointer registrations.
func (d *Document) Bindings() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.bindings)
}

// Dispatch delivers ev to every bound handler in registration order. The
// handlers run without the document lock held.
func (d *Document) Dispatch(ev PointerEvent) {
	d.mu.Lock()
	ids := make([]int, 0, len(d.bindings))
	for id := range d.bindings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]PointerFunc, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, d.bindings[id])
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Children returns the top level elements.
func (d *Document) Children() []*Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.children)
}

// Select returns every element of the given kind carrying class, in
// document order. An empty kind or class matches anything.
func (d *Document) Select(kind Kind, class string) []*Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []*Element
	var walk func([]*Element)
	walk = func(es []*Element) {
		for _, e := range es {
			if (kind == "" || e.kind == kind) && (class == "" || e.hasClass(class)) {
				out = append(out, e)
			}
			walk(e.children)
		}
	}
	walk(d.children)

	return out
}

// Element is a node of a Document.
type Element struct {
	doc      *Document
	parent   *Element
	kind     Kind
	attrs    []attr
	classes  []string
	text     string
	children []*Element
}

type attr struct {
	name  string
	value string
}

func (e *Element) Append(kind Kind) Node {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	c := &Element{doc: e.doc, parent: e, kind: kind}
	e.children = append(e.children, c)

	return c
}

func (e *Element) Attr(name string, value any) Node {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if name == "class" {
		e.classes = strings.Fields(fmt.Sprint(value))
		return e
	}

	v := formatValue(value)
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = v
			return e
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: v})

	return e
}

func (e *Element) Class(names string) Node {
	return e.Attr("class", names)
}

func (e *Element) Classed(name string, on bool) Node {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	has := e.hasClass(name)
	switch {
	case on && !has:
		e.classes = append(e.classes, name)
	case !on && has:
		e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
	}

	return e
}

func (e *Element) Text(s string) Node {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	e.text = s

	return e
}

func (e *Element) Remove() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if e.parent == nil {
		e.doc.children = slices.DeleteFunc(e.doc.children, func(c *Element) bool { return c == e })
		return
	}
	e.parent.children = slices.DeleteFunc(e.parent.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

func (e *Element) Kind() Kind { return e.kind }

// Value returns the attribute value set under name.
func (e *Element) Value(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if name == "class" {
		return strings.Join(e.classes, " "), len(e.classes) > 0
	}
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// Float parses a numeric attribute; missing or non-numeric values give NaN.
func (e *Element) Float(name string) float64 {
	v, ok := e.Value(name)
	if !ok {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func (e *Element) HasClass(name string) bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	return e.hasClass(name)
}

func (e *Element) hasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

func (e *Element) Content() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	return e.text
}

func (e *Element) Children() []*Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	return slices.Clone(e.children)
}

// FormatNumber renders a coordinate the way attributes store it: at most
// three decimals, no trailing zeros.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return FormatNumber(x)
	case float32:
		return FormatNumber(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
