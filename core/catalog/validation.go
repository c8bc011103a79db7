// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	stderrors "errors"
	"fmt"
	"math"
	"regexp"

	"unitcalc/core/unit"
	"unitcalc/internal/errors"
)

// ValidationRule checks one entry against the whole catalog
type ValidationRule func(c *Catalog, e *Entry) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateSymbol,
		validateFactor,
		validateDefinition,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	for _, symbol := range c.duplicates {
		errs = append(errs, fmt.Errorf("%s: registered more than once", symbol))
	}
	for _, symbol := range c.Symbols() {
		entry := c.entries[symbol]
		for _, rule := range rules {
			if err := rule(c, entry); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", entry.Symbol, err))
			}
		}
	}

	return errs
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateSymbol ensures a symbol can be written in an expression
func validateSymbol(_ *Catalog, e *Entry) error {
	if !identifier.MatchString(e.Symbol) {
		return fmt.Errorf("symbol is not an identifier")
	}
	return nil
}

// validateFactor ensures native scales are finite and positive
func validateFactor(_ *Catalog, e *Entry) error {
	n, ok := e.Unit.(*unit.Native)
	if !ok {
		return nil
	}
	factor := n.Factor(nil)
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return fmt.Errorf("scale factor %v must be finite and positive", factor)
	}
	return nil
}

// validateDefinition ensures derived units only reference catalog units
func validateDefinition(c *Catalog, e *Entry) error {
	d, ok := e.Unit.(*unit.Derived)
	if !ok {
		return nil
	}
	for _, elm := range d.Definition() {
		if _, ok := elm.Unit().(*unit.Native); ok {
			if !c.contains(elm.Unit()) {
				return fmt.Errorf("references unregistered unit %s", elm.Unit())
			}
			continue
		}
		if named, ok := elm.Unit().(*unit.Derived); !ok || named.Name() == "" || !c.contains(named) {
			return fmt.Errorf("references unregistered unit %s", elm.Unit())
		}
	}
	return nil
}

func (c *Catalog) contains(u unit.Unit) bool {
	registered, ok := c.Lookup(u.String())
	return ok && registered == u
}

func validationError(errs []error) error {
	return errors.Internal(fmt.Sprintf("catalog has %d validation errors", len(errs)), stderrors.Join(errs...))
}
