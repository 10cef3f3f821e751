package lower

import (
	"reflect"
	"testing"

	bridgeruntime "github.com/wippyai/bridge-runtime"
	"github.com/wippyai/bridge-runtime/opaque"
)

func TestLeafIdentity(t *testing.T) {
	if got := Leaf[bool]()(true); got != true {
		t.Errorf("Leaf[bool](true) = %v", got)
	}
	if got := Leaf[int8]()(-8); got != -8 {
		t.Errorf("Leaf[int8](-8) = %d", got)
	}
	if got := Leaf[int16]()(-16); got != -16 {
		t.Errorf("Leaf[int16](-16) = %d", got)
	}
	if got := Leaf[int32]()(-32); got != -32 {
		t.Errorf("Leaf[int32](-32) = %d", got)
	}
	if got := Leaf[int64]()(-64); got != -64 {
		t.Errorf("Leaf[int64](-64) = %d", got)
	}
	if got := Leaf[uint8]()(8); got != 8 {
		t.Errorf("Leaf[uint8](8) = %d", got)
	}
	if got := Leaf[uint16]()(16); got != 16 {
		t.Errorf("Leaf[uint16](16) = %d", got)
	}
	if got := Leaf[uint32]()(32); got != 32 {
		t.Errorf("Leaf[uint32](32) = %d", got)
	}
	if got := Leaf[uint64]()(64); got != 64 {
		t.Errorf("Leaf[uint64](64) = %d", got)
	}
	if got := Leaf[uint]()(128); got != 128 {
		t.Errorf("Leaf[uint](128) = %d", got)
	}
	if got := Leaf[float32]()(1.5); got != 1.5 {
		t.Errorf("Leaf[float32](1.5) = %v", got)
	}
	if got := Leaf[float64]()(2.5); got != 2.5 {
		t.Errorf("Leaf[float64](2.5) = %v", got)
	}
	if got := Leaf[string]()("text"); got != "text" {
		t.Errorf("Leaf[string](text) = %q", got)
	}
	if got := Leaf[bridgeruntime.Unit]()(bridgeruntime.Unit{}); got != (bridgeruntime.Unit{}) {
		t.Errorf("Leaf[Unit] = %v", got)
	}
}

func TestLeafNamedType(t *testing.T) {
	// The union is approximate, so named leaf types lower too.
	type Celsius float64

	if got := Leaf[Celsius]()(21.5); got != 21.5 {
		t.Errorf("Leaf[Celsius](21.5) = %v", got)
	}
}

func TestSliceOrderPreserved(t *testing.T) {
	rule := Slice(Leaf[string]())

	got := rule([]string{"a", "b", "c"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice = %v, want %v", got, want)
	}
}

func TestSliceNil(t *testing.T) {
	rule := Slice(Leaf[uint8]())

	if got := rule(nil); got != nil {
		t.Errorf("Slice(nil) = %v, want nil", got)
	}
	if got := rule([]uint8{}); got == nil || len(got) != 0 {
		t.Errorf("Slice(empty) = %v, want empty non-nil", got)
	}
}

func TestSliceInteriorLowered(t *testing.T) {
	// Interior conversion must run per element: lower boxed values so the
	// output shape differs from the input shape.
	rule := Slice(Box[int32]())

	a, b := int32(1), int32(2)
	got := rule([]*int32{&a, &b})
	want := []int32{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice(Box) = %v, want %v", got, want)
	}
}

func TestOptionPresence(t *testing.T) {
	rule := Option(Leaf[uint8]())

	if got := rule(nil); got != nil {
		t.Errorf("Option(absent) = %v, want nil", got)
	}

	v := uint8(7)
	got := rule(&v)
	if got == nil || *got != 7 {
		t.Errorf("Option(present 7) = %v, want &7", got)
	}
	if got == &v {
		t.Error("Option returned the source pointer, want a fresh one")
	}
}

func TestBoxUnwrap(t *testing.T) {
	rule := Box[int32]()

	v := int32(42)
	if got := rule(&v); got != 42 {
		t.Errorf("Box(&42) = %d, want bare 42", got)
	}
}

func TestArrayIdentity(t *testing.T) {
	rule := Array[[3]uint8]()

	src := [3]uint8{1, 2, 3}
	if got := rule(src); got != src {
		t.Errorf("Array(%v) = %v, want identical", src, got)
	}
}

func TestOpaquePassthrough(t *testing.T) {
	table := opaque.NewTable[*[]int]()
	payload := &[]int{1, 2, 3}
	ref := table.Wrap(payload)

	rule := Opaque[*[]int]()
	got := rule(ref)

	if got.Handle() != ref.Handle() {
		t.Errorf("Opaque changed handle: %d -> %d", ref.Handle(), got.Handle())
	}
	back, ok := got.Get()
	if !ok || back != payload {
		t.Error("Opaque output does not reference the identical payload")
	}
}

func TestZeroCopyRewrap(t *testing.T) {
	rule := ZeroCopy(Slice(Leaf[uint8]()))

	src := bridgeruntime.NewZeroCopy([]uint8{9, 8, 7})
	got := rule(src)
	if !reflect.DeepEqual(got.Unwrap(), []uint8{9, 8, 7}) {
		t.Errorf("ZeroCopy interior = %v, want [9 8 7]", got.Unwrap())
	}
}

func TestZeroCopyInteriorLowered(t *testing.T) {
	rule := ZeroCopy(Box[uint64]())

	v := uint64(5)
	got := rule(bridgeruntime.NewZeroCopy(&v))
	if got.Unwrap() != 5 {
		t.Errorf("ZeroCopy(Box) interior = %v, want 5", got.Unwrap())
	}
}

func TestPairSlots(t *testing.T) {
	rule := Pair(Leaf[uint8](), Leaf[string]())

	got := rule(bridgeruntime.Pair[uint8, string]{A: 1, B: "a"})
	if got.A != 1 || got.B != "a" {
		t.Errorf("Pair = %+v, want {1 a}", got)
	}
}

func TestTupleSlotsIndependent(t *testing.T) {
	// Each slot uses its own rule; positions stay put.
	rule := Tuple3(Leaf[uint8](), Box[string](), Option(Leaf[bool]()))

	s := "mid"
	b := true
	got := rule(bridgeruntime.Tuple3[uint8, *string, *bool]{A: 3, B: &s, C: &b})
	if got.A != 3 {
		t.Errorf("slot A = %v, want 3", got.A)
	}
	if got.B != "mid" {
		t.Errorf("slot B = %q, want mid (unboxed)", got.B)
	}
	if got.C == nil || *got.C != true {
		t.Errorf("slot C = %v, want &true", got.C)
	}
}

func TestTuple4Tuple5(t *testing.T) {
	r4 := Tuple4(Leaf[int8](), Leaf[int16](), Leaf[int32](), Leaf[int64]())
	got4 := r4(bridgeruntime.Tuple4[int8, int16, int32, int64]{A: 1, B: 2, C: 3, D: 4})
	if got4.A != 1 || got4.B != 2 || got4.C != 3 || got4.D != 4 {
		t.Errorf("Tuple4 = %+v", got4)
	}

	r5 := Tuple5(Leaf[uint8](), Leaf[uint16](), Leaf[uint32](), Leaf[uint64](), Leaf[string]())
	got5 := r5(bridgeruntime.Tuple5[uint8, uint16, uint32, uint64, string]{A: 1, B: 2, C: 3, D: 4, E: "e"})
	if got5.A != 1 || got5.B != 2 || got5.C != 3 || got5.D != 4 || got5.E != "e" {
		t.Errorf("Tuple5 = %+v", got5)
	}
}

func TestForeignTraceIdentity(t *testing.T) {
	ref := bridgeruntime.NewForeignRef(17)
	if got := Foreign()(ref); got != ref {
		t.Errorf("Foreign(%v) = %v", ref, got)
	}

	tr := bridgeruntime.CaptureTrace(0)
	got := Trace()(tr)
	if !reflect.DeepEqual(got.Frames(), tr.Frames()) {
		t.Error("Trace changed captured frames")
	}
}

// Sequence of optional tuples of shared handles: every nesting level applies
// its own rule without a dedicated combined rule existing anywhere.
func TestDeepComposition(t *testing.T) {
	table := opaque.NewTable[string]()
	ref := table.Wrap("shared")

	rule := Slice(Option(Pair(Opaque[string](), Leaf[uint32]())))

	present := bridgeruntime.Pair[opaque.Ref[string], uint32]{A: ref, B: 9}
	got := rule([]*bridgeruntime.Pair[opaque.Ref[string], uint32]{&present, nil})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] == nil {
		t.Fatal("present element lowered to absent")
	}
	if got[0].A.Handle() != ref.Handle() || got[0].B != 9 {
		t.Errorf("element 0 = %+v", got[0])
	}
	if got[1] != nil {
		t.Error("absent element lowered to present")
	}
}

func TestScenarioOptionalPairs(t *testing.T) {
	// [present (1, "a"), absent] stays structurally unchanged: all leaves
	// here are identity-mapped.
	rule := Slice(Option(Pair(Leaf[uint8](), Leaf[string]())))

	present := bridgeruntime.Pair[uint8, string]{A: 1, B: "a"}
	got := rule([]*bridgeruntime.Pair[uint8, string]{&present, nil})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] == nil || got[0].A != 1 || got[0].B != "a" {
		t.Errorf("element 0 = %+v, want present (1, a)", got[0])
	}
	if got[1] != nil {
		t.Errorf("element 1 = %+v, want absent", got[1])
	}
}
