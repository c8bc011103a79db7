// Package catalog - Unit catalog
// Maps unit symbols to shared Unit instances. The catalog is built once
// and then only read; values and composite units reference its entries.
package catalog

import (
	"sort"
	"sync"

	"unitcalc/core/unit"
)

// Category groups units by the dimension they measure
type Category int

const (
	Length Category = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	Derived
)

// String returns string representation
func (c Category) String() string {
	switch c {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Time:
		return "time"
	case Current:
		return "current"
	case Temperature:
		return "temperature"
	case Amount:
		return "amount"
	case Luminosity:
		return "luminosity"
	case Derived:
		return "derived"
	default:
		return "unknown"
	}
}

// Entry is a catalog entry for a unit symbol
type Entry struct {
	Symbol      string
	Description string
	Category    Category
	Unit        unit.Unit
}

// Catalog is an immutable symbol to unit mapping
type Catalog struct {
	entries    map[string]*Entry
	duplicates []string
}

// Registrar adds a family of units to a catalog under construction
type Registrar func(c *Catalog)

// New builds and validates a catalog
func New(registrars ...Registrar) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]*Entry),
	}
	for _, register := range registrars {
		register(c)
	}
	if errs := c.Validate(DefaultValidationRules()); len(errs) > 0 {
		return nil, validationError(errs)
	}
	return c, nil
}

func (c *Catalog) register(entry Entry) {
	if _, exists := c.entries[entry.Symbol]; exists {
		c.duplicates = append(c.duplicates, entry.Symbol)
		return
	}
	c.entries[entry.Symbol] = &entry
}

func (c *Catalog) native(category Category, n *unit.Native) *unit.Native {
	c.register(Entry{Symbol: n.Symbol(), Description: n.Description(), Category: category, Unit: n})
	return n
}

func (c *Catalog) derived(description string, d *unit.Derived) *unit.Derived {
	c.register(Entry{Symbol: d.Name(), Description: description, Category: Derived, Unit: d})
	return d
}

// Lookup returns the unit registered under symbol
func (c *Catalog) Lookup(symbol string) (unit.Unit, bool) {
	entry, ok := c.entries[symbol]
	if !ok {
		return nil, false
	}
	return entry.Unit, true
}

// Dimless returns the shared dimensionless unit
func (c *Catalog) Dimless() unit.Unit {
	return unit.Dimless
}

// Symbols returns every registered symbol in sorted order
func (c *Catalog) Symbols() []string {
	symbols := make([]string, 0, len(c.entries))
	for symbol := range c.entries {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Entries returns entries ordered by category then symbol
func (c *Catalog) Entries() []Entry {
	result := make([]Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Symbol < result[j].Symbol
	})
	return result
}

// Stats returns the number of units per category
func (c *Catalog) Stats() map[Category]int {
	stats := make(map[Category]int)
	for _, entry := range c.entries {
		stats[entry.Category]++
	}
	return stats
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog of SI, customary and derived units
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(RegisterSI, RegisterCustomary, RegisterDerived)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
