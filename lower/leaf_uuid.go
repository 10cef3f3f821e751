//go:build bridge_uuid

package lower

import "github.com/google/uuid"

// UUID is the identity lowering for unique identifiers, enabled with the
// bridge_uuid build tag.
func UUID() Fn[uuid.UUID, uuid.UUID] {
	return func(src uuid.UUID) uuid.UUID {
		return src
	}
}
