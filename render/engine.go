// SPDX-License-Identifier: EPL-2.0

// Package render builds the visible waveform on a surface.
//
// Redraw rebuilds everything from the current data, zones and attachment
// state. Update only rewrites the buffered path over a sub-range of points,
// keeping per-tick cost proportional to the range instead of the data.
package render

import (
	"math"

	"github.com/ik5/audwave/config"
	"github.com/ik5/audwave/interact"
	"github.com/ik5/audwave/scale"
	"github.com/ik5/audwave/surface"
	"github.com/ik5/audwave/zone"
)

// SeekLineWidth is the width of the seek and progress indicators.
const SeekLineWidth = 4.0

// zoneBandShare is the share of the height given to the zone band when zone
// highlighting is enabled. The rest is the seek band.
const zoneBandShare = 0.75

// CSS classes applied to the rendered nodes.
const (
	ClassMask       = "mask-area"
	ClassBuffered   = "buffered-area"
	ClassPlaying    = "playing"
	ClassMessage    = "status-message"
	ClassZone       = "highlight-zone"
	ClassActiveZone = "active"
	ClassLine       = "hover-line"
	ClassHidden     = "hide"
)

// Layout is the geometry computed by the last Redraw.
type Layout struct {
	Width      float64
	Height     float64
	ZoneHeight float64
	Left       float64
	Top        float64
	Padding    float64
}

// Geometry returns the layout in the shape the interaction machine expects.
func (l Layout) Geometry() interact.Geometry {
	return interact.Geometry{Width: l.Width, Height: l.Height, ZoneHeight: l.ZoneHeight}
}

// Frame is the state a full redraw renders.
type Frame struct {
	Samples  []scale.Sample
	Duration float64

	// Interactive adds the mask overlay and the seek/progress indicators.
	Interactive bool

	Zones   []zone.Zone
	Pending *zone.Pending
	Message string
}

// Engine is not safe for concurrent use; its owner serialises access.
type Engine struct {
	surface surface.Surface
	cfg     config.Config

	layout Layout
	points []scale.PlotPoint
	scales scale.Set

	buffered     surface.Node
	seekLine     surface.Node
	positionLine surface.Node
	message      surface.Node
	zonesGroup   surface.Node
	zoneRects    []surface.Node
	activeZone   surface.Node
}

func New(s surface.Surface, cfg config.Config) *Engine {
	return &Engine{surface: s, cfg: cfg.Normalize()}
}

// SetConfig replaces the configuration used by the next Redraw.
func (e *Engine) SetConfig(cfg config.Config) { e.cfg = cfg.Normalize() }

func (e *Engine) Config() config.Config { return e.cfg }

func (e *Engine) Layout() Layout            { return e.layout }
func (e *Engine) Scales() scale.Set         { return e.scales }
func (e *Engine) Points() []scale.PlotPoint { return e.points }

// Redraw clears the surface and rebuilds every node.
func (e *Engine) Redraw(f Frame) Layout {
	box := e.surface.Box()
	e.surface.Empty()
	e.reset()

	w := max(box.Width, 0)
	h := w / float64(e.cfg.HeightPercent)
	if e.cfg.Height > 0 {
		h = float64(e.cfg.Height)
	}

	res := scale.Process(f.Samples, f.Duration, int(w), e.cfg.CentreBias)
	e.points = res.Points

	pad := float64(e.cfg.Padding)
	e.scales = scale.Set{
		Time:  res.Scales.Time.WithRange(pad, w-pad),
		Index: res.Scales.Index.WithRange(pad, w-pad),
		Amp:   res.Scales.Amp.WithRange(h, 0),
	}

	zh := 0.0
	if e.cfg.HighlightMode {
		zh = math.Round(h * zoneBandShare)
	}

	e.layout = Layout{
		Width:      w,
		Height:     h,
		ZoneHeight: zh,
		Left:       box.Left,
		Top:        box.Top,
		Padding:    pad,
	}

	svg := e.surface.Append(surface.SVG).Attr("width", "100%").Attr("height", h)
	d := AreaPath(e.points, 0, e.scales)

	bufferClass := ClassBuffered
	if f.Interactive {
		svg.Append(surface.Group).Append(surface.Path).Class(ClassMask).Attr("d", d)
		bufferClass += " " + ClassPlaying
	}

	e.buffered = svg.Append(surface.Group).Append(surface.Path).Attr("d", d).Class(bufferClass)

	if e.cfg.TextOverlay > 0 {
		e.message = svg.Append(surface.Group).Append(surface.Text).
			Attr("x", w/2).
			Attr("y", h/2).
			Class(ClassMessage).
			Text(f.Message)
	}

	if e.cfg.HighlightMode {
		e.zonesGroup = svg.Append(surface.Group)
		e.DrawZones(f.Zones)
		e.DrawActiveZone(f.Pending)
	}

	if f.Interactive {
		e.seekLine = svg.Append(surface.Rect).
			Class(ClassLine).
			Attr("x", -SeekLineWidth/2).
			Attr("width", SeekLineWidth).
			Attr("y", zh).
			Attr("height", h-zh).
			Classed(ClassHidden, true)

		e.positionLine = svg.Append(surface.Rect).
			Class(ClassLine).
			Attr("x", -SeekLineWidth/2).
			Attr("width", SeekLineWidth).
			Attr("y", 0).
			Attr("height", h)
	}

	return e.layout
}

func (e *Engine) reset() {
	e.buffered = nil
	e.seekLine = nil
	e.positionLine = nil
	e.message = nil
	e.zonesGroup = nil
	e.zoneRects = nil
	e.activeZone = nil
}

// Update rewrites the buffered path over points [start, end). It reports
// false, leaving the surface untouched, when the range is empty.
func (e *Engine) Update(start, end int) bool {
	if e.buffered == nil {
		return false
	}

	start = max(start, 0)
	end = min(end, len(e.points))
	if start >= end {
		return false
	}

	e.buffered.Attr("d", AreaPath(e.points[start:end], start, e.scales))

	return true
}

// ShowSeek places the seek indicator centred on x.
func (e *Engine) ShowSeek(x float64) {
	if e.seekLine == nil {
		return
	}
	e.seekLine.Classed(ClassHidden, false).Attr("x", x-SeekLineWidth/2)
}

func (e *Engine) HideSeek() {
	if e.seekLine == nil {
		return
	}
	e.seekLine.Classed(ClassHidden, true)
}

// SetPosition moves the progress indicator to the given playback time.
func (e *Engine) SetPosition(seconds float64) {
	if e.positionLine == nil {
		return
	}
	e.positionLine.Attr("x", e.scales.Time.Map(seconds)-SeekLineWidth/2)
}

// DrawZones replaces the committed zone rectangles. Bounds come from the
// zones' times so they follow the current time scale.
func (e *Engine) DrawZones(zs []zone.Zone) {
	if e.zonesGroup == nil {
		return
	}

	for _, r := range e.zoneRects {
		r.Remove()
	}
	e.zoneRects = e.zoneRects[:0]

	for _, z := range zs {
		x0 := e.scales.Time.Map(z.StartTime)
		x1 := e.scales.Time.Map(z.EndTime)
		r := e.zonesGroup.Append(surface.Rect).
			Attr("y", 0).
			Attr("height", e.layout.ZoneHeight).
			Class(ClassZone).
			Attr("x", x0).
			Attr("width", x1-x0).
			Attr("data-zone", z.ID)
		e.zoneRects = append(e.zoneRects, r)
	}
}

// DrawActiveZone shows, moves or removes the pending zone rectangle.
func (e *Engine) DrawActiveZone(p *zone.Pending) {
	if e.zonesGroup == nil {
		return
	}

	if p == nil {
		if e.activeZone != nil {
			e.activeZone.Remove()
			e.activeZone = nil
		}
		return
	}

	if e.activeZone == nil {
		e.activeZone = e.zonesGroup.Append(surface.Rect).
			Attr("y", 0).
			Attr("height", e.layout.ZoneHeight)
	}
	e.activeZone.
		Class(ClassZone+" "+ClassActiveZone).
		Attr("x", p.Start).
		Attr("width", p.Width())
}

// SetMessage replaces the status text when the overlay is enabled.
func (e *Engine) SetMessage(s string) {
	if e.message == nil {
		return
	}
	e.message.Text(s)
}
