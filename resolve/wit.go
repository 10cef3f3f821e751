package resolve

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/bridge-runtime/errors"
)

// BoundaryType describes the boundary-side type of a rule tree in WIT. The
// generator uses it to declare the guest-facing signature of lowered values.
//
// Two shapes have no exact WIT counterpart: fixed arrays describe as lists
// of their element, and zero-copy wrappers describe as their interior (the
// wrapper is a transport hint, not a type).
func BoundaryType(rule *Rule) (wit.Type, error) {
	if rule == nil {
		return nil, errors.New(errors.PhaseEmit, errors.KindNilType).
			Detail("rule tree cannot be nil").
			Build()
	}

	switch rule.Kind {
	case KindLeaf:
		return rule.Leaf.Wit, nil

	case KindSlice, KindArray:
		elem, err := BoundaryType(rule.Elem)
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.List{Type: elem}}, nil

	case KindOption:
		elem, err := BoundaryType(rule.Elem)
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.Option{Type: elem}}, nil

	case KindBox, KindZeroCopy:
		return BoundaryType(rule.Elem)

	case KindOpaque:
		return &wit.TypeDef{Kind: &wit.Own{}}, nil

	case KindTuple:
		types := make([]wit.Type, len(rule.Slots))
		for i, slot := range rule.Slots {
			t, err := BoundaryType(slot)
			if err != nil {
				return nil, err
			}
			types[i] = t
		}
		return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}, nil
	}

	return nil, errors.New(errors.PhaseEmit, errors.KindInvalidShape).
		GoType(rule.Go).
		Detail("unknown rule kind %d", uint8(rule.Kind)).
		Build()
}
