//go:build bridge_uuid

package resolve

import (
	"reflect"

	"github.com/google/uuid"
	"go.bytecodealliance.org/wit"
)

// Unique-identifier leaf. The boundary side sees the canonical 16-byte form.
func init() {
	mustRegister(LeafEntry{
		Name:    "uuid",
		Go:      "uuid.UUID",
		Expr:    "lower.UUID()",
		Wit:     &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}},
		Type:    reflect.TypeOf(uuid.UUID{}),
		Feature: "bridge_uuid",
	})
}
