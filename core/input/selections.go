// Package input - Selection parsing
package input

import (
	"strconv"
	"strings"

	"enterprise-quote/core/catalog"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

// ParseSelections turns "id" / "id=value" flags into a selection map.
//
// For flat items the value is a boolean (default true); for per-unit items
// it is a quantity (default 1). Ids missing from cat are passed through so
// the engine can reject them. A later flag for the same id wins.
func ParseSelections(args []string, cat *catalog.Catalog) (types.Selections, error) {
	selections := make(types.Selections, len(args))

	for _, arg := range args {
		id, value, hasValue := strings.Cut(strings.TrimSpace(arg), "=")
		id = strings.TrimSpace(id)
		value = strings.TrimSpace(value)
		if id == "" {
			return nil, qerrors.Newf(qerrors.TypeInput, "empty selection in %q", arg)
		}

		kind := types.KindFlat
		if cat != nil {
			if entry, ok := cat.Get(id); ok {
				kind = entry.Kind
			}
		}

		switch kind {
		case types.KindPerUnit:
			qty := int64(1)
			if hasValue {
				n, err := ParseVolume(value)
				if err != nil {
					return nil, qerrors.Parsing("quantity for "+id, err)
				}
				qty = n
			}
			selections[id] = types.Units(qty)
		default:
			enabled := true
			if hasValue {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return nil, qerrors.Parsing("toggle for "+id, err)
				}
				enabled = b
			}
			selections[id] = types.Selection{Enabled: enabled}
		}
	}

	return selections, nil
}
