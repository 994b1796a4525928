// Package catalog - Authoritative add-on catalog
// Holds every module, configuration option and integration a price book offers.
// This is the source of truth for which selection ids exist.
package catalog

import (
	"fmt"

	"enterprise-quote/core/types"
)

// Catalog is an ordered registry of add-ons keyed by id
type Catalog struct {
	entries map[string]*types.AddOn
	order   []string
}

// NewCatalog creates a new catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]*types.AddOn),
	}
}

// Register adds an add-on to the catalog
func (c *Catalog) Register(entry types.AddOn) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, exists := c.entries[entry.ID]; exists {
		return fmt.Errorf("add-on %q already registered", entry.ID)
	}
	if entry.Period == "" {
		entry.Period = types.PeriodMonthly
	}
	c.entries[entry.ID] = &entry
	c.order = append(c.order, entry.ID)
	return nil
}

// MustRegister registers entries and panics on a bad definition.
// Only for static built-in catalogs.
func (c *Catalog) MustRegister(entries ...types.AddOn) *Catalog {
	for _, e := range entries {
		if err := c.Register(e); err != nil {
			panic(err)
		}
	}
	return c
}

// Get returns an add-on by id
func (c *Catalog) Get(id string) (types.AddOn, bool) {
	entry, ok := c.entries[id]
	if !ok {
		return types.AddOn{}, false
	}
	return *entry, true
}

// Len returns the number of registered add-ons
func (c *Catalog) Len() int {
	return len(c.order)
}

// All returns every add-on in registration order
func (c *Catalog) All() []types.AddOn {
	result := make([]types.AddOn, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, *c.entries[id])
	}
	return result
}

// ListByBucket returns the add-ons of one bucket in registration order
func (c *Catalog) ListByBucket(bucket types.Bucket) []types.AddOn {
	var result []types.AddOn
	for _, id := range c.order {
		if entry := c.entries[id]; entry.Bucket == bucket {
			result = append(result, *entry)
		}
	}
	return result
}

// Stats returns catalog statistics
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{
		ByBucket: make(map[types.Bucket]BucketStats),
	}

	for _, entry := range c.entries {
		stats.Total++

		bucketStats := stats.ByBucket[entry.Bucket]
		bucketStats.Total++

		switch entry.Kind {
		case types.KindFlat:
			bucketStats.Flat++
		case types.KindPerUnit:
			bucketStats.PerUnit++
		case types.KindAlwaysOn:
			bucketStats.AlwaysOn++
		}

		stats.ByBucket[entry.Bucket] = bucketStats
	}

	return stats
}

// CatalogStats holds catalog statistics
type CatalogStats struct {
	Total    int
	ByBucket map[types.Bucket]BucketStats
}

// BucketStats holds per-bucket statistics
type BucketStats struct {
	Total    int
	Flat     int
	PerUnit  int
	AlwaysOn int
}
