//go:build bridge_datetime

package resolve

import (
	"reflect"
	"time"

	"go.bytecodealliance.org/wit"
)

// Calendar and duration leaves. Both cross the boundary as signed 64-bit
// microsecond counts on the wire side.
func init() {
	mustRegister(LeafEntry{
		Name:    "time",
		Go:      "time.Time",
		Expr:    "lower.Time()",
		Wit:     wit.S64{},
		Type:    reflect.TypeOf(time.Time{}),
		Feature: "bridge_datetime",
	})
	mustRegister(LeafEntry{
		Name:    "duration",
		Go:      "time.Duration",
		Expr:    "lower.Duration()",
		Wit:     wit.S64{},
		Type:    reflect.TypeOf(time.Duration(0)),
		Feature: "bridge_datetime",
	})
}
