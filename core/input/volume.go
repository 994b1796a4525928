// Package input - UI boundary parsing
// Raw text and control positions are normalized here before they reach the engine.
package input

import (
	"strconv"
	"strings"

	qerrors "enterprise-quote/internal/errors"
)

// separators are the grouping characters accepted in volume text
var separators = strings.NewReplacer(",", "", "_", "", " ", "", "'", "", "\u00a0", "")

// ParseVolume parses volume text such as "1,000,000".
// Empty text parses as zero, like clearing the input field.
func ParseVolume(text string) (int64, error) {
	cleaned := separators.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return 0, nil
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return 0, qerrors.Newf(qerrors.TypeInput, "volume %q must be a whole non-negative number", text)
		}
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, qerrors.Parsing("volume "+strconv.Quote(text), err)
	}
	return v, nil
}

// ClampVolume forces a volume into [0, max]; reports whether it changed
func ClampVolume(volume, max int64) (int64, bool) {
	switch {
	case volume < 0:
		return 0, true
	case volume > max:
		return max, true
	default:
		return volume, false
	}
}
