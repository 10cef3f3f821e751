package resolve

import (
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/bridge-runtime/errors"
)

const (
	rootPkgPath   = "github.com/wippyai/bridge-runtime"
	opaquePkgPath = rootPkgPath + "/opaque"
)

// Resolver maps source Go types to lowering rule trees. Resolution is pure
// and cached; a Resolver is safe for concurrent use.
type Resolver struct {
	reg   *Registry
	cache sync.Map // reflect.Type -> *Rule
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRegistry uses reg instead of the default leaf registry.
func WithRegistry(reg *Registry) Option {
	return func(r *Resolver) {
		r.reg = reg
	}
}

// NewResolver creates a resolver over the default registry.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{reg: Default()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve returns the unique rule tree for the source type t. It fails when
// any layer of t has no applicable rule or two applicable rules; the caller
// (a bridge generator) surfaces that as a build failure.
func (r *Resolver) Resolve(t reflect.Type) (*Rule, error) {
	if t == nil {
		return nil, errors.NilType(errors.PhaseResolve)
	}

	if cached, ok := r.cache.Load(t); ok {
		return cached.(*Rule), nil
	}

	rule, err := r.resolve(t, nil)
	if err != nil {
		Logger().Debug("resolution failed",
			zap.String("go_type", t.String()),
			zap.Error(err))
		return nil, err
	}

	r.cache.Store(t, rule)
	Logger().Debug("resolved shape",
		zap.String("go_type", t.String()),
		zap.String("shape", rule.Shape()))
	return rule, nil
}

func (r *Resolver) resolve(t reflect.Type, path []string) (*Rule, error) {
	// Nominal leaves take precedence; the structural rules below apply only
	// to unregistered types, which keeps the rule set disjoint. Registering
	// one of the module's own wrapper shapes as a leaf would make two rules
	// applicable, so that is rejected here instead of silently picking one.
	if e, ok := r.reg.lookupType(t); ok {
		if shape, wrapper := wrapperShape(t); wrapper {
			return nil, errors.AmbiguousRule(errors.PhaseResolve, path, t.String(), "leaf", shape)
		}
		return &Rule{Kind: KindLeaf, Leaf: e, Go: e.Go}, nil
	}

	if e, ok := primitiveByKind[t.Kind()]; ok {
		return &Rule{Kind: KindLeaf, Leaf: e, Go: t.String()}, nil
	}

	switch t.Kind() {
	case reflect.Slice:
		elemPath := append(append([]string{}, path...), "list")
		elem, err := r.resolve(t.Elem(), elemPath)
		if err != nil {
			return nil, err
		}
		return &Rule{Kind: KindSlice, Elem: elem, Go: t.String()}, nil

	case reflect.Pointer:
		// A pointer is an optional value. Owned indirections (the box rule)
		// exist only in shape expressions written by generators; a plain Go
		// pointer always resolves to option.
		elemPath := append(append([]string{}, path...), "option")
		elem, err := r.resolve(t.Elem(), elemPath)
		if err != nil {
			return nil, err
		}
		return &Rule{Kind: KindOption, Elem: elem, Go: t.String()}, nil

	case reflect.Array:
		elemPath := append(append([]string{}, path...), "array")
		elem, err := r.resolve(t.Elem(), elemPath)
		if err != nil {
			return nil, err
		}
		if elem.Kind != KindLeaf {
			return nil, errors.New(errors.PhaseResolve, errors.KindUnsupportedShape).
				Path(path...).
				GoType(t.String()).
				Detail("fixed arrays hold only leaf elements, got %s", elem.Kind).
				Build()
		}
		return &Rule{Kind: KindArray, Elem: elem, Len: t.Len(), Go: t.String()}, nil

	case reflect.Struct:
		return r.resolveStruct(t, path)
	}

	return nil, errors.UnsupportedShape(errors.PhaseResolve, path, t.String())
}

func (r *Resolver) resolveStruct(t reflect.Type, path []string) (*Rule, error) {
	if t.PkgPath() == rootPkgPath {
		switch wrapperName(t) {
		case "Pair", "Tuple3", "Tuple4", "Tuple5":
			return r.resolveTuple(t, path)
		case "ZeroCopy":
			elemPath := append(append([]string{}, path...), "zerocopy")
			elem, err := r.resolve(t.Field(0).Type, elemPath)
			if err != nil {
				return nil, err
			}
			return &Rule{Kind: KindZeroCopy, Elem: elem, Go: t.String()}, nil
		}
	}

	if t.PkgPath() == opaquePkgPath && wrapperName(t) == "Ref" {
		return &Rule{Kind: KindOpaque, Go: t.String(), Payload: typeArg(t.String())}, nil
	}

	// Synthetic tuples: unnamed structs with slot fields A..E, as built by
	// the shape frontend via reflect.StructOf.
	if t.Name() == "" && isTupleFields(t) {
		return r.resolveTuple(t, path)
	}

	// Any empty struct is the unit value.
	if t.NumField() == 0 {
		return &Rule{Kind: KindLeaf, Leaf: primitiveByName["unit"], Go: t.String()}, nil
	}

	// Records are lowered field by field in generated glue, each field
	// through its own rule chain; a record is not itself a shape here.
	return nil, errors.New(errors.PhaseResolve, errors.KindUnsupportedShape).
		Path(path...).
		GoType(t.String()).
		Detail("struct is not a boundary shape; lower its fields individually").
		Build()
}

func (r *Resolver) resolveTuple(t reflect.Type, path []string) (*Rule, error) {
	arity := t.NumField()
	if arity < 2 || arity > 5 {
		return nil, errors.New(errors.PhaseResolve, errors.KindArity).
			Path(path...).
			GoType(t.String()).
			Detail("tuple arity %d outside 2..5", arity).
			Build()
	}

	slots := make([]*Rule, arity)
	for i := 0; i < arity; i++ {
		slotPath := append(append([]string{}, path...), "[slot "+t.Field(i).Name+"]")
		slot, err := r.resolve(t.Field(i).Type, slotPath)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}
	return &Rule{Kind: KindTuple, Slots: slots, Go: t.String()}, nil
}

// wrapperName strips the instantiation brackets from a generic type name:
// "Pair[uint8,string]" -> "Pair".
func wrapperName(t reflect.Type) string {
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

// typeArg returns the instantiation argument text of a generic type string:
// "opaque.Ref[string]" -> "string". Display only.
func typeArg(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 && strings.HasSuffix(s, "]") {
		return s[i+1 : len(s)-1]
	}
	return ""
}

// wrapperShape reports whether t is one of the module's container shapes.
func wrapperShape(t reflect.Type) (string, bool) {
	if t.Kind() != reflect.Struct {
		return "", false
	}
	if t.PkgPath() == rootPkgPath {
		switch wrapperName(t) {
		case "Pair", "Tuple3", "Tuple4", "Tuple5":
			return "tuple", true
		case "ZeroCopy":
			return "zerocopy", true
		}
	}
	if t.PkgPath() == opaquePkgPath && wrapperName(t) == "Ref" {
		return "opaque", true
	}
	if t.Name() == "" && isTupleFields(t) {
		return "tuple", true
	}
	return "", false
}

var slotNames = [...]string{"A", "B", "C", "D", "E"}

func isTupleFields(t reflect.Type) bool {
	n := t.NumField()
	if n < 2 || n > len(slotNames) {
		return false
	}
	for i := 0; i < n; i++ {
		if t.Field(i).Name != slotNames[i] {
			return false
		}
	}
	return true
}
