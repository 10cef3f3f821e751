package resolve

import (
	"strconv"
	"strings"

	"github.com/wippyai/bridge-runtime/errors"
)

// ParseShape parses a shape expression into a rule tree. The expression
// language mirrors Rule.Shape:
//
//	list<option<tuple<u8, string>>>
//	array<16, u8>
//	opaque<Database>
//	zerocopy<list<u8>>
//	box<s32>
//
// Leaf names are the primitives (u8, s8, ..., f64, bool, string, unit,
// usize) plus every nominal leaf active in the registry (foreign, trace,
// and the build-tag gated time, duration, uuid).
func ParseShape(expr string) (*Rule, error) {
	return ParseShapeIn(expr, Default())
}

// ParseShapeIn parses a shape expression against a specific registry.
func ParseShapeIn(expr string, reg *Registry) (*Rule, error) {
	p := &shapeParser{src: expr, reg: reg}
	rule, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errf("trailing input at offset %d", p.pos)
	}
	return rule, nil
}

type shapeParser struct {
	reg *Registry
	src string
	pos int
}

func (p *shapeParser) errf(format string, args ...any) error {
	return errors.New(errors.PhaseResolve, errors.KindInvalidShape).
		Shape(p.src).
		Detail(format, args...).
		Build()
}

func (p *shapeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *shapeParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *shapeParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.errf("expected %q at offset %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

func (p *shapeParser) parse() (*Rule, error) {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		return nil, p.errf("expected shape name at offset %d", p.pos)
	}

	switch name {
	case "list":
		elem, err := p.angled()
		if err != nil {
			return nil, err
		}
		return &Rule{Kind: KindSlice, Elem: elem, Go: "[]" + elem.Go}, nil

	case "option":
		elem, err := p.angled()
		if err != nil {
			return nil, err
		}
		return &Rule{Kind: KindOption, Elem: elem, Go: "*" + elem.Go}, nil

	case "box":
		elem, err := p.angled()
		if err != nil {
			return nil, err
		}
		return &Rule{Kind: KindBox, Elem: elem, Go: "*" + elem.Go}, nil

	case "zerocopy":
		elem, err := p.angled()
		if err != nil {
			return nil, err
		}
		return &Rule{Kind: KindZeroCopy, Elem: elem, Go: "bridgeruntime.ZeroCopy[" + elem.Go + "]"}, nil

	case "array":
		return p.parseArray()

	case "tuple":
		return p.parseTuple()

	case "opaque":
		return p.parseOpaque()
	}

	if e, ok := primitiveByName[name]; ok {
		return &Rule{Kind: KindLeaf, Leaf: e, Go: e.Go}, nil
	}
	if e, ok := p.reg.lookupName(name); ok {
		return &Rule{Kind: KindLeaf, Leaf: e, Go: e.Go}, nil
	}
	return nil, p.errf("unknown shape %q", name)
}

func (p *shapeParser) angled() (*Rule, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	elem, err := p.parse()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	return elem, nil
}

func (p *shapeParser) parseArray() (*Rule, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	p.skipSpace()
	digits := p.ident()
	length, err := strconv.Atoi(digits)
	if err != nil || length < 0 {
		return nil, p.errf("array length %q is not a non-negative integer", digits)
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	elem, err := p.parse()
	if err != nil {
		return nil, err
	}
	if elem.Kind != KindLeaf {
		return nil, p.errf("fixed arrays hold only leaf elements, got %s", elem.Kind)
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	return &Rule{
		Kind: KindArray,
		Elem: elem,
		Len:  length,
		Go:   "[" + strconv.Itoa(length) + "]" + elem.Go,
	}, nil
}

var tupleGoCtors = [...]string{2: "bridgeruntime.Pair", 3: "bridgeruntime.Tuple3", 4: "bridgeruntime.Tuple4", 5: "bridgeruntime.Tuple5"}

func (p *shapeParser) parseTuple() (*Rule, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}

	var slots []*Rule
	for {
		slot, err := p.parse()
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)

		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}

	arity := len(slots)
	if arity < 2 || arity > 5 {
		return nil, p.errf("tuple arity %d outside 2..5", arity)
	}

	goArgs := make([]string, arity)
	for i, s := range slots {
		goArgs[i] = s.Go
	}
	return &Rule{
		Kind:  KindTuple,
		Slots: slots,
		Go:    tupleGoCtors[arity] + "[" + strings.Join(goArgs, ", ") + "]",
	}, nil
}

// parseOpaque reads the payload as raw text; the payload type is opaque to
// resolution and only reproduced in output.
func (p *shapeParser) parseOpaque() (*Rule, error) {
	p.skipSpace()
	payload := "any"
	if p.pos < len(p.src) && p.src[p.pos] == '<' {
		p.pos++
		start := p.pos
		depth := 1
		for p.pos < len(p.src) && depth > 0 {
			switch p.src[p.pos] {
			case '<':
				depth++
			case '>':
				depth--
			}
			p.pos++
		}
		if depth != 0 {
			return nil, p.errf("unterminated opaque payload")
		}
		payload = strings.TrimSpace(p.src[start : p.pos-1])
		if payload == "" {
			return nil, p.errf("opaque payload cannot be empty")
		}
	}
	return &Rule{
		Kind:    KindOpaque,
		Go:      "opaque.Ref[" + payload + "]",
		Payload: payload,
	}, nil
}
