// Package pricing - Add-on bucket fees
package pricing

import (
	"github.com/shopspring/decimal"

	"enterprise-quote/core/catalog"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

// validateSelections rejects ids missing from the catalog and negative quantities
func validateSelections(cat *catalog.Catalog, selections types.Selections) error {
	for _, id := range selections.IDs() {
		entry, ok := cat.Get(id)
		if !ok {
			return qerrors.UnknownAddOn(id)
		}
		sel := selections[id]
		if sel.Quantity < 0 {
			return qerrors.Newf(qerrors.TypeInput, "add-on %s: quantity %d must not be negative", entry.ID, sel.Quantity).
				WithContext("id", entry.ID)
		}
	}
	return nil
}

// lineItem prices a single add-on against its selection.
// ok is false when the add-on does not contribute.
func lineItem(entry types.AddOn, sel types.Selection, selected bool) (types.LineItem, bool) {
	unit := entry.YearlyUnitPrice()

	var quantity int64
	switch entry.Kind {
	case types.KindAlwaysOn:
		quantity = 1
	case types.KindFlat:
		if !selected || !sel.Enabled {
			return types.LineItem{}, false
		}
		quantity = 1
	case types.KindPerUnit:
		if !selected || sel.Quantity == 0 {
			return types.LineItem{}, false
		}
		quantity = sel.Quantity
	default:
		return types.LineItem{}, false
	}

	return types.LineItem{
		ID:        entry.ID,
		Name:      entry.Name,
		Bucket:    entry.Bucket,
		Kind:      entry.Kind,
		Quantity:  quantity,
		UnitPrice: unit,
		Amount:    unit.Mul(decimal.NewFromInt(quantity)),
	}, true
}

// BucketFees sums the yearly fee of every contributing add-on per bucket.
// Items come back in catalog order.
func BucketFees(cat *catalog.Catalog, selections types.Selections) (map[types.Bucket]decimal.Decimal, []types.LineItem, error) {
	if err := validateSelections(cat, selections); err != nil {
		return nil, nil, err
	}

	fees := map[types.Bucket]decimal.Decimal{
		types.BucketModule:        decimal.Zero,
		types.BucketConfiguration: decimal.Zero,
		types.BucketIntegration:   decimal.Zero,
	}
	var items []types.LineItem

	for _, entry := range cat.All() {
		sel, selected := selections[entry.ID]
		item, ok := lineItem(entry, sel, selected)
		if !ok {
			continue
		}
		fees[entry.Bucket] = fees[entry.Bucket].Add(item.Amount)
		items = append(items, item)
	}

	return fees, items, nil
}
