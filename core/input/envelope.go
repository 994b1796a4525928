// Package input - Normalized input envelope
// The CLI and renderers consume this only; the engine sees just the QuoteInput.
package input

import (
	"enterprise-quote/core/pricing"
	"enterprise-quote/core/slider"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

// Raw is the unvalidated state of the calculator controls
type Raw struct {
	// Volume is the text of the volume field
	Volume string

	// Slider is a control position; when set it overrides Volume
	Slider *float64

	// Period is "monthly" or "yearly"
	Period string

	// Selections are "id" / "id=value" toggles
	Selections []string

	// Clamp applies the field's on-blur clamp instead of rejecting out-of-range volume
	Clamp bool
}

// Envelope is the normalized input for one computation
type Envelope struct {
	// Input is the snapshot passed to the engine
	Input types.QuoteInput

	// Position is the slider position for Input.Volume
	Position float64

	// Clamped reports that the volume was forced into range
	Clamped bool

	// FromSlider reports that the volume came from a slider position
	FromSlider bool
}

// Normalize validates raw control state against a price book
func Normalize(raw Raw, book *pricing.PriceBook) (*Envelope, error) {
	if err := book.Validate(); err != nil {
		return nil, err
	}

	mapper, err := slider.NewMapper(book.Tiers)
	if err != nil {
		return nil, qerrors.Pricing("slider", err)
	}

	period, err := types.ParseBillingPeriod(raw.Period)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, "billing period", err)
	}

	env := &Envelope{}

	var volume int64
	if raw.Slider != nil {
		volume = mapper.PositionToVolume(*raw.Slider)
		env.FromSlider = true
	} else {
		volume, err = ParseVolume(raw.Volume)
		if err != nil {
			return nil, err
		}
		if raw.Clamp {
			volume, env.Clamped = ClampVolume(volume, book.MaxVolume())
		}
	}

	selections, err := ParseSelections(raw.Selections, book.Catalog)
	if err != nil {
		return nil, err
	}

	env.Input = types.QuoteInput{
		Volume:        volume,
		BillingPeriod: period,
		Selections:    selections,
	}
	env.Position = mapper.VolumeToPosition(volume)
	return env, nil
}
