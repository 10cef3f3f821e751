package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is one layer of a resolved lowering: which rule applies to the layer
// and, for containers, the rules for the interior shapes. A Rule tree is
// immutable once returned.
type Rule struct {
	Leaf    *LeafEntry // set for KindLeaf
	Elem    *Rule      // set for slice, option, box, array, zerocopy
	Slots   []*Rule    // set for tuple, arity 2..5
	Go      string     // Go type expression of the source shape
	Payload string     // opaque payload type expression, display only
	Len     int        // array length
	Kind    Kind
}

// Shape renders the canonical shape expression for the rule tree.
func (r *Rule) Shape() string {
	switch r.Kind {
	case KindLeaf:
		return r.Leaf.Name
	case KindSlice:
		return "list<" + r.Elem.Shape() + ">"
	case KindOption:
		return "option<" + r.Elem.Shape() + ">"
	case KindBox:
		return "box<" + r.Elem.Shape() + ">"
	case KindArray:
		return "array<" + strconv.Itoa(r.Len) + ", " + r.Elem.Shape() + ">"
	case KindTuple:
		parts := make([]string, len(r.Slots))
		for i, s := range r.Slots {
			parts[i] = s.Shape()
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"
	case KindOpaque:
		if r.Payload != "" {
			return "opaque<" + r.Payload + ">"
		}
		return "opaque"
	case KindZeroCopy:
		return "zerocopy<" + r.Elem.Shape() + ">"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (r *Rule) String() string {
	return r.Shape()
}

// Tree renders the rule tree one layer per line, indented by depth. Used by
// the explain tool.
func (r *Rule) Tree() string {
	var b strings.Builder
	r.writeTree(&b, 0)
	return b.String()
}

func (r *Rule) writeTree(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))

	switch r.Kind {
	case KindLeaf:
		fmt.Fprintf(b, "leaf %s (%s)", r.Leaf.Name, r.Go)
		if r.Leaf.Feature != "" {
			fmt.Fprintf(b, " [%s]", r.Leaf.Feature)
		}
		b.WriteByte('\n')
	case KindArray:
		fmt.Fprintf(b, "array len=%d (%s)\n", r.Len, r.Go)
		r.Elem.writeTree(b, depth+1)
	case KindOpaque:
		fmt.Fprintf(b, "opaque (%s)\n", r.Go)
	case KindTuple:
		fmt.Fprintf(b, "tuple arity=%d (%s)\n", len(r.Slots), r.Go)
		for _, s := range r.Slots {
			s.writeTree(b, depth+1)
		}
	default:
		fmt.Fprintf(b, "%s (%s)\n", r.Kind, r.Go)
		if r.Elem != nil {
			r.Elem.writeTree(b, depth+1)
		}
	}
}
