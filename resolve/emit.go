package resolve

import (
	"strings"

	"github.com/wippyai/bridge-runtime/errors"
)

var tupleCtors = [...]string{2: "lower.Pair", 3: "lower.Tuple3", 4: "lower.Tuple4", 5: "lower.Tuple5"}

// Emit renders the Go expression composing package lower constructors for a
// rule tree. A bridge generator pastes the expression into glue code, where
// the compiler re-checks every layer.
func Emit(rule *Rule) (string, error) {
	if rule == nil {
		return "", errors.New(errors.PhaseEmit, errors.KindNilType).
			Detail("rule tree cannot be nil").
			Build()
	}

	var b strings.Builder
	if err := emit(&b, rule); err != nil {
		return "", err
	}
	return b.String(), nil
}

func emit(b *strings.Builder, rule *Rule) error {
	switch rule.Kind {
	case KindLeaf:
		b.WriteString(rule.Leaf.Expr)
		return nil

	case KindSlice:
		return emitUnary(b, "lower.Slice(", rule.Elem)

	case KindOption:
		return emitUnary(b, "lower.Option(", rule.Elem)

	case KindZeroCopy:
		return emitUnary(b, "lower.ZeroCopy(", rule.Elem)

	case KindBox:
		b.WriteString("lower.Box[")
		b.WriteString(rule.Elem.Go)
		b.WriteString("]()")
		return nil

	case KindArray:
		b.WriteString("lower.Array[")
		b.WriteString(rule.Go)
		b.WriteString("]()")
		return nil

	case KindOpaque:
		b.WriteString("lower.Opaque[")
		b.WriteString(rule.Payload)
		b.WriteString("]()")
		return nil

	case KindTuple:
		arity := len(rule.Slots)
		if arity < 2 || arity >= len(tupleCtors) {
			return errors.New(errors.PhaseEmit, errors.KindArity).
				GoType(rule.Go).
				Detail("tuple arity %d outside 2..5", arity).
				Build()
		}
		b.WriteString(tupleCtors[arity])
		b.WriteByte('(')
		for i, slot := range rule.Slots {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := emit(b, slot); err != nil {
				return err
			}
		}
		b.WriteByte(')')
		return nil
	}

	return errors.New(errors.PhaseEmit, errors.KindInvalidShape).
		GoType(rule.Go).
		Detail("unknown rule kind %d", uint8(rule.Kind)).
		Build()
}

func emitUnary(b *strings.Builder, ctor string, elem *Rule) error {
	b.WriteString(ctor)
	if err := emit(b, elem); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}
