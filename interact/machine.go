// SPDX-License-Identifier: EPL-2.0

// Package interact classifies pointer activity over a waveform into seek
// intent or zone-highlight intent.
//
// The surface is split into two horizontal bands. The upper zone band,
// [0, ZoneHeight), only exists when zone highlighting is enabled; the lower
// seek band covers [ZoneHeight, Height]. The mode is level-triggered: every
// Move recomputes it from the pointer position alone.
package interact

import "github.com/ik5/audwave/zone"

// Mode is the current pointer intent.
type Mode int

const (
	None Mode = iota
	SeekTrack
	ZoneTrack
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case SeekTrack:
		return "seek"
	case ZoneTrack:
		return "zone"
	default:
		return "unknown"
	}
}

// Geometry is the layout the pointer is classified against, in local
// pixels.
type Geometry struct {
	Width      float64
	Height     float64
	ZoneHeight float64
}

func (g Geometry) inX(x float64) bool { return x >= 0 && x <= g.Width }

func (g Geometry) inSeekBand(y float64) bool { return y >= g.ZoneHeight && y <= g.Height }

func (g Geometry) inZoneBand(y float64) bool { return y >= 0 && y < g.ZoneHeight }

// Effect lists what the view must update after a pointer event.
type Effect struct {
	Mode Mode

	// ShowSeek asks for the seek indicator at SeekX; HideSeek hides it.
	ShowSeek bool
	HideSeek bool
	SeekX    float64

	// ActiveZone is set when the pending zone changed or disappeared.
	ActiveZone bool
}

// Outcome is the result of releasing the pointer.
type Outcome struct {
	Seek  bool
	SeekX float64

	Committed bool
	Zone      zone.Zone

	// Discarded is set when a pending zone was dropped without committing.
	Discarded bool
}

// Machine is not safe for concurrent use.
type Machine struct {
	zones     *zone.Store
	mode      Mode
	positionX float64
}

func New(zones *zone.Store) *Machine {
	return &Machine{zones: zones, positionX: -1}
}

func (m *Machine) Mode() Mode { return m.mode }

// PositionX is the last tracked pointer x, or -1 when the pointer is out.
func (m *Machine) PositionX() float64 { return m.positionX }

// Move classifies a pointer position.
func (m *Machine) Move(x, y float64, g Geometry) Effect {
	if !g.inX(x) {
		return m.Leave()
	}

	switch {
	case g.inSeekBand(y):
		m.mode = SeekTrack
		m.positionX = x
		return Effect{Mode: SeekTrack, ShowSeek: true, SeekX: x}

	case g.inZoneBand(y):
		m.mode = ZoneTrack
		m.positionX = x
		eff := Effect{Mode: ZoneTrack, HideSeek: true}
		if _, ok := m.zones.Extend(x); ok {
			eff.ActiveZone = true
		}
		return eff
	}

	return m.Leave()
}

// Leave resets to None. Any pending zone is dropped: no partial zone
// survives losing the pointer.
func (m *Machine) Leave() Effect {
	m.mode = None
	m.positionX = -1

	return Effect{
		Mode:       None,
		HideSeek:   true,
		ActiveZone: m.zones.Discard(),
	}
}

// Press is the drag-start hook. Inside the zone band it begins a pending
// zone at x; elsewhere it does nothing.
func (m *Machine) Press(x, y float64, g Geometry) Effect {
	if !g.inX(x) || !g.inZoneBand(y) {
		return Effect{Mode: m.mode}
	}

	m.mode = ZoneTrack
	m.positionX = x
	m.zones.Begin(x)

	return Effect{Mode: ZoneTrack, HideSeek: true, ActiveZone: true}
}

// Release ends a gesture. In seek mode it reports the tracked x for a seek.
// In zone mode a pending zone commits only while playing and only when
// wider than zone.MinSize; toTime converts pixel bounds to seconds. Any
// pending zone left over is discarded.
func (m *Machine) Release(playing bool, toTime func(px float64) float64) Outcome {
	var out Outcome

	switch m.mode {
	case SeekTrack:
		out.Seek = true
		out.SeekX = m.positionX

	case ZoneTrack:
		if _, ok := m.zones.Pending(); ok && playing {
			out.Zone, out.Committed = m.zones.Commit(toTime)
			out.Discarded = !out.Committed
			return out
		}
	}

	out.Discarded = m.zones.Discard()

	return out
}
