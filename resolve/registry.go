package resolve

import (
	"reflect"
	"sync"

	"go.bytecodealliance.org/wit"

	bridgeruntime "github.com/wippyai/bridge-runtime"
	"github.com/wippyai/bridge-runtime/errors"
)

// LeafEntry describes one identity-lowered leaf type.
type LeafEntry struct {
	Wit     wit.Type     // boundary-side type description
	Type    reflect.Type // nil for primitives matched by reflect.Kind
	Name    string       // shape expression name, e.g. "u8", "time"
	Go      string       // Go type expression, e.g. "uint8", "time.Time"
	Expr    string       // lower constructor expression, e.g. "lower.Leaf[uint8]()"
	Feature string       // build tag gating the leaf, empty when always on
}

// Registry holds the nominal leaf types known to resolution. Primitive
// leaves are built in; nominal leaves (ForeignRef, Trace, and the optional
// time/uuid set) register here, normally from package init of a build-tagged
// file.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*LeafEntry
	byName map[string]*LeafEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]*LeafEntry),
		byName: make(map[string]*LeafEntry),
	}
}

// Register adds a nominal leaf. The entry must carry a name and a Go type,
// and neither may collide with an existing leaf.
func (r *Registry) Register(e LeafEntry) error {
	if e.Name == "" {
		return errors.Registration(e.Go, "leaf name cannot be empty")
	}
	if e.Type == nil {
		return errors.Registration(e.Go, "leaf type cannot be nil")
	}
	if _, builtin := primitiveByName[e.Name]; builtin {
		return errors.Registration(e.Go, "leaf name collides with primitive "+e.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byType[e.Type]; dup {
		return errors.Registration(e.Go, "leaf type already registered")
	}
	if _, dup := r.byName[e.Name]; dup {
		return errors.Registration(e.Go, "leaf name already registered: "+e.Name)
	}

	entry := e
	r.byType[e.Type] = &entry
	r.byName[e.Name] = &entry
	return nil
}

func (r *Registry) lookupType(t reflect.Type) (*LeafEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byType[t]
	return e, ok
}

func (r *Registry) lookupName(name string) (*LeafEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	return e, ok
}

var defaultRegistry = NewRegistry()

// Default returns the registry used by resolvers unless one is supplied
// explicitly.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a nominal leaf to the default registry.
func Register(e LeafEntry) error {
	return defaultRegistry.Register(e)
}

// mustRegister is for init-time registration of the module's own leaves.
func mustRegister(e LeafEntry) {
	if err := defaultRegistry.Register(e); err != nil {
		panic(err)
	}
}

func init() {
	mustRegister(LeafEntry{
		Name: "foreign",
		Go:   "bridgeruntime.ForeignRef",
		Expr: "lower.Foreign()",
		Wit:  &wit.TypeDef{Kind: &wit.Own{}},
		Type: reflect.TypeOf(bridgeruntime.ForeignRef{}),
	})
	mustRegister(LeafEntry{
		Name: "trace",
		Go:   "bridgeruntime.Trace",
		Expr: "lower.Trace()",
		Wit:  wit.String{},
		Type: reflect.TypeOf(bridgeruntime.Trace{}),
	})
}

// Primitive leaves are matched structurally by reflect.Kind, so they live
// outside the registry. Plain int is deliberately absent: only fixed-width
// signed integers cross the boundary.
var primitives = []LeafEntry{
	{Name: "bool", Go: "bool", Expr: "lower.Leaf[bool]()", Wit: wit.Bool{}},
	{Name: "s8", Go: "int8", Expr: "lower.Leaf[int8]()", Wit: wit.S8{}},
	{Name: "s16", Go: "int16", Expr: "lower.Leaf[int16]()", Wit: wit.S16{}},
	{Name: "s32", Go: "int32", Expr: "lower.Leaf[int32]()", Wit: wit.S32{}},
	{Name: "s64", Go: "int64", Expr: "lower.Leaf[int64]()", Wit: wit.S64{}},
	{Name: "u8", Go: "uint8", Expr: "lower.Leaf[uint8]()", Wit: wit.U8{}},
	{Name: "u16", Go: "uint16", Expr: "lower.Leaf[uint16]()", Wit: wit.U16{}},
	{Name: "u32", Go: "uint32", Expr: "lower.Leaf[uint32]()", Wit: wit.U32{}},
	{Name: "u64", Go: "uint64", Expr: "lower.Leaf[uint64]()", Wit: wit.U64{}},
	{Name: "usize", Go: "uint", Expr: "lower.Leaf[uint]()", Wit: wit.U64{}},
	{Name: "f32", Go: "float32", Expr: "lower.Leaf[float32]()", Wit: wit.F32{}},
	{Name: "f64", Go: "float64", Expr: "lower.Leaf[float64]()", Wit: wit.F64{}},
	{Name: "string", Go: "string", Expr: "lower.Leaf[string]()", Wit: wit.String{}},
	{Name: "unit", Go: "bridgeruntime.Unit", Expr: "lower.Leaf[bridgeruntime.Unit]()", Wit: &wit.TypeDef{Kind: &wit.Tuple{}}},
}

var (
	primitiveByName = make(map[string]*LeafEntry, len(primitives))
	primitiveByKind = make(map[reflect.Kind]*LeafEntry, len(primitives))
)

func init() {
	kinds := map[string]reflect.Kind{
		"bool": reflect.Bool,
		"s8":   reflect.Int8, "s16": reflect.Int16, "s32": reflect.Int32, "s64": reflect.Int64,
		"u8": reflect.Uint8, "u16": reflect.Uint16, "u32": reflect.Uint32, "u64": reflect.Uint64,
		"usize": reflect.Uint,
		"f32":   reflect.Float32, "f64": reflect.Float64,
		"string": reflect.String,
	}
	for i := range primitives {
		e := &primitives[i]
		primitiveByName[e.Name] = e
		if k, ok := kinds[e.Name]; ok {
			primitiveByKind[k] = e
		}
	}
}
