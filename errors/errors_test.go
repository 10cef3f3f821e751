package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindUnsupportedShape,
				Path:   []string{"list", "option", "[slot 1]"},
				GoType: "map[string]int",
				Shape:  "list<option<?>>",
				Detail: "no lowering rule applies",
			},
			contains: []string{"[resolve]", "unsupported_shape", "list.option.[slot 1]", "map[string]int", "list<option<?>>", "no lowering rule applies"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEmit,
				Kind:  KindArity,
			},
			contains: []string{"[emit]", "arity"},
		},
		{
			name: "with cause",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindInvalidShape,
				Detail: "parse failed",
				Cause:  errors.New("unexpected token"),
			},
			contains: []string{"[resolve]", "invalid_shape", "parse failed", "caused by: unexpected token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := UnsupportedShape(PhaseResolve, nil, "chan int")

	if !errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindUnsupportedShape}) {
		t.Error("Is() should match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseEmit, Kind: KindUnsupportedShape}) {
		t.Error("Is() matched a different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindAmbiguousRule}) {
		t.Error("Is() matched a different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseResolve, KindInvalidShape, cause, "wrapped")

	if !errors.Is(err, cause) {
		t.Error("Unwrap chain should reach the cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseResolve, KindAmbiguousRule).
		Path("list", "tuple").
		GoType("Pair[int, string]").
		Detail("both %s and %s rules apply", "leaf", "tuple").
		Build()

	if err.Phase != PhaseResolve || err.Kind != KindAmbiguousRule {
		t.Errorf("phase/kind = %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 {
		t.Errorf("path = %v", err.Path)
	}
	if !strings.Contains(err.Detail, "leaf") || !strings.Contains(err.Detail, "tuple") {
		t.Errorf("detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := NilType(PhaseResolve); err.Kind != KindNilType {
		t.Errorf("NilType kind = %s", err.Kind)
	}
	if err := InvalidShape(PhaseResolve, "list<", "unterminated"); err.Shape != "list<" {
		t.Errorf("InvalidShape shape = %q", err.Shape)
	}
	if err := Registration("time.Time", "already registered"); err.Phase != PhaseRegistry {
		t.Errorf("Registration phase = %s", err.Phase)
	}

	amb := AmbiguousRule(PhaseResolve, nil, "T", "leaf", "tuple")
	if !strings.Contains(amb.Detail, "leaf") || !strings.Contains(amb.Detail, "tuple") {
		t.Errorf("AmbiguousRule detail = %q", amb.Detail)
	}
}
