package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/jsondom/debug"
	"github.com/signadot/jsondom/format"
	"github.com/signadot/jsondom/ir"

	"github.com/segmentio/encoding/json"
)

// Parse builds a tree from d.  The input must hold exactly one value;
// leading and trailing whitespace is ignored.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d, pOpts)
	case format.YAMLFormat:
		res, err = parseYAML(d, pOpts)
	default:
		err = fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %s failed: %v\n", pOpts.format, err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s %v\n", pOpts.format, res)
	}
	return res, nil
}

// jsonState tracks the open containers while tokens are consumed.
type jsonState struct {
	opts      *parseOpts
	stack     []*ir.Node
	root      *ir.Node
	key       string
	expectKey bool
}

func parseJSON(d []byte, opts *parseOpts) (*ir.Node, error) {
	if !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	st := &jsonState{opts: opts}
	tok := json.NewTokenizer(d)
	for tok.Next() {
		if tok.Err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, tok.Err)
		}
		var err error
		switch tok.Delim {
		case '{':
			err = st.open(ir.NewObject())
		case '[':
			err = st.open(ir.NewArray())
		case '}', ']':
			err = st.close()
		case ',':
			st.expectKey = st.inObject()
		case ':':
		default:
			err = st.value(tok.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if tok.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, tok.Err)
	}
	if st.root == nil || len(st.stack) != 0 {
		return nil, fmt.Errorf("%w: unexpected end of input", errInternal)
	}
	return st.root, nil
}

func (st *jsonState) inObject() bool {
	n := len(st.stack)
	return n != 0 && st.stack[n-1].Type == ir.ObjectType
}

func (st *jsonState) attach(node *ir.Node) error {
	n := len(st.stack)
	if n == 0 {
		if st.root != nil {
			return fmt.Errorf("%w: multiple top level values", ErrParse)
		}
		st.root = node
		return nil
	}
	top := st.stack[n-1]
	if top.Type == ir.ObjectType {
		return top.AppendField(st.key, node)
	}
	return top.Append(node)
}

func (st *jsonState) open(node *ir.Node) error {
	if st.opts.tooDeep(len(st.stack) + 1) {
		return fmt.Errorf("%w: limit %d", ErrNesting, st.opts.maxDepth)
	}
	if err := st.attach(node); err != nil {
		return err
	}
	st.stack = append(st.stack, node)
	st.expectKey = node.Type == ir.ObjectType
	return nil
}

func (st *jsonState) close() error {
	n := len(st.stack)
	if n == 0 {
		return fmt.Errorf("%w: unbalanced close", errInternal)
	}
	st.stack = st.stack[:n-1]
	st.expectKey = false
	return nil
}

func (st *jsonState) value(raw []byte) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty token", errInternal)
	}
	if st.expectKey {
		if err := json.Unmarshal(raw, &st.key); err != nil {
			return fmt.Errorf("%w: key: %w", ErrParse, err)
		}
		st.expectKey = false
		return nil
	}
	node, err := scalar(raw)
	if err != nil {
		return err
	}
	return st.attach(node)
}

func scalar(raw []byte) (*ir.Node, error) {
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: string: %w", ErrParse, err)
		}
		return ir.FromString(s), nil
	case 'n':
		return ir.Null(), nil
	case 't':
		return ir.FromBool(true), nil
	case 'f':
		return ir.FromBool(false), nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: number %q: %w", ErrParse, raw, err)
	}
	return ir.FromFloat(f), nil
}
