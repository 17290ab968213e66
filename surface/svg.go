// SPDX-License-Identifier: EPL-2.0

package surface

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// WriteSVG serialises the document's elements as XML. Top level svg
// elements get the SVG namespace.
func (d *Document) WriteSVG(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	for _, e := range d.children {
		if err := e.encode(enc, true); err != nil {
			return fmt.Errorf("encode %s: %w", e.kind, err)
		}
	}

	if err := enc.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (e *Element) encode(enc *xml.Encoder, top bool) error {
	start := xml.StartElement{Name: xml.Name{Local: string(e.kind)}}

	if top && e.kind == SVG {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: svgNamespace})
	}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.name}, Value: a.value})
	}
	if len(e.classes) > 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "class"}, Value: strings.Join(e.classes, " ")})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := c.encode(enc, false); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
