package resolve

// Kind identifies which lowering rule a resolved layer uses.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindSlice
	KindOption
	KindBox
	KindArray
	KindTuple
	KindOpaque
	KindZeroCopy
)

var kindNames = [...]string{
	KindLeaf:     "leaf",
	KindSlice:    "list",
	KindOption:   "option",
	KindBox:      "box",
	KindArray:    "array",
	KindTuple:    "tuple",
	KindOpaque:   "opaque",
	KindZeroCopy: "zerocopy",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
