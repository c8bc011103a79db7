package value

import (
	"unitcalc/core/evalctx"
	"unitcalc/internal/errors"
)

// Kind identifies a value variant
type Kind int

const (
	KindReal Kind = iota
	KindBool
	KindString
)

// String returns the kind name used in error messages
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// promotions maps a kind to the kind it up-converts to. Real is the top
// of the chain; a new variant only needs to declare its target here.
var promotions = map[Kind]Kind{
	KindBool:   KindReal,
	KindString: KindReal,
}

// chain lists k followed by every kind it promotes to
func chain(k Kind) []Kind {
	kinds := []Kind{k}
	for {
		next, ok := promotions[k]
		if !ok {
			return kinds
		}
		kinds = append(kinds, next)
		k = next
	}
}

// commonKind returns the lowest kind both a and b promote to
func commonKind(a, b Kind) (Kind, bool) {
	bChain := chain(b)
	for _, ka := range chain(a) {
		for _, kb := range bChain {
			if ka == kb {
				return ka, true
			}
		}
	}
	return 0, false
}

// unify converts both operands to a common kind before dispatch
func unify(ctx *evalctx.Context, a, b Value) (Value, Value, error) {
	if a.Kind() == b.Kind() {
		return a, b, nil
	}

	target, ok := commonKind(a.Kind(), b.Kind())
	if !ok {
		return nil, nil, errors.TypeConversion(a.Kind().String(), b.Kind().String())
	}

	var err error
	if a, err = a.upConvert(ctx, target); err != nil {
		return nil, nil, err
	}
	if b, err = b.upConvert(ctx, target); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
