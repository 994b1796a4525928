// Package slider maps a linear 0-100 control onto the tiered volume axis.
// Every tier gets an equal-width band of the control regardless of its volume
// span, which gives fine control in small low tiers and coarse control in the
// large high ones.
package slider

import (
	"fmt"
	"math"

	"enterprise-quote/core/types"
)

const (
	// MinPosition is the left end of the control
	MinPosition = 0.0

	// MaxPosition is the right end of the control
	MaxPosition = 100.0
)

// Band is the part of the control occupied by one tier
type Band struct {
	Tier  types.Tier
	Start float64
	End   float64
}

// Center is the middle of the band, where the tier label is drawn
func (b Band) Center() float64 {
	return (b.Start + b.End) / 2
}

// Mapper converts between control positions and volumes
type Mapper struct {
	tiers types.TierTable
	width float64
}

// NewMapper creates a mapper over a validated tier table
func NewMapper(tiers types.TierTable) (*Mapper, error) {
	if err := tiers.Validate(); err != nil {
		return nil, fmt.Errorf("slider: %w", err)
	}
	return &Mapper{
		tiers: tiers,
		width: (MaxPosition - MinPosition) / float64(len(tiers)),
	}, nil
}

// BandWidth is the share of the control each tier occupies
func (m *Mapper) BandWidth() float64 {
	return m.width
}

// Bands returns the band layout in tier order
func (m *Mapper) Bands() []Band {
	bands := make([]Band, len(m.tiers))
	for i, t := range m.tiers {
		start := MinPosition + float64(i)*m.width
		bands[i] = Band{Tier: t, Start: start, End: start + m.width}
	}
	return bands
}

// ClampPosition forces a position onto the control
func ClampPosition(pos float64) float64 {
	if math.IsNaN(pos) || pos < MinPosition {
		return MinPosition
	}
	if pos > MaxPosition {
		return MaxPosition
	}
	return pos
}

// TierAt returns the index of the tier whose band contains pos.
// A position on a band boundary belongs to the lower band.
func (m *Mapper) TierAt(pos float64) int {
	pos = ClampPosition(pos)
	for i := range m.tiers {
		end := MinPosition + float64(i+1)*m.width
		if pos <= end {
			return i
		}
	}
	return len(m.tiers) - 1
}

// PositionToVolume maps a control position to a volume.
// Out-of-range positions clamp to the ends of the control.
func (m *Mapper) PositionToVolume(pos float64) int64 {
	pos = ClampPosition(pos)
	i := m.TierAt(pos)
	t := m.tiers[i]

	start := MinPosition + float64(i)*m.width
	rel := (pos - start) / m.width
	rel = math.Max(0, math.Min(1, rel))

	volume := t.Min + int64(math.Round(rel*float64(t.Span())))
	if volume > t.Max {
		volume = t.Max
	}
	return volume
}

// VolumeToPosition maps a volume to a control position.
// Volumes outside the table clamp to the ends of the control.
func (m *Mapper) VolumeToPosition(volume int64) float64 {
	if volume <= m.tiers[0].Min {
		return MinPosition
	}
	if volume >= m.tiers.MaxVolume() {
		return MaxPosition
	}

	i := m.tiers.Find(volume)
	t := m.tiers[i]
	start := MinPosition + float64(i)*m.width
	if t.Span() == 0 {
		return start
	}
	return start + float64(volume-t.Min)/float64(t.Span())*m.width
}

// Resolution is the volume covered by one position unit inside volume's band
func (m *Mapper) Resolution(volume int64) int64 {
	i := m.tiers.Find(volume)
	if i < 0 {
		if volume < 0 {
			i = 0
		} else {
			i = len(m.tiers) - 1
		}
	}
	return int64(math.Ceil(float64(m.tiers[i].Span()) / m.width))
}
