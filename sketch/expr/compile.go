package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fieldviz/sketch/vmath"
)

// Scalar is a compiled expression: a pure function of the sample position.
type Scalar func(p vmath.Vec3) float64

// Compile parses src and binds every identifier and call against the symbol
// table. Parsing and binding happen once; the returned closure never fails.
func Compile(src string) (Scalar, error) {
	n, err := parse(src)
	if err != nil {
		return nil, err
	}
	return n.compile()
}

// Format returns the normalized, fully parenthesized form of src.
func Format(src string) (string, error) {
	n, err := parse(src)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

type node interface {
	compile() (Scalar, error)
	String() string
}

type nodeNumber struct{ v float64 }

func (n nodeNumber) compile() (Scalar, error) { return constant(n.v), nil }

func (n nodeNumber) String() string { return strconv.FormatFloat(n.v, 'g', -1, 64) }

type nodeIdent struct {
	name string
	pos  int
}

func (n nodeIdent) compile() (Scalar, error) {
	switch canonical(n.name) {
	case "x":
		return func(p vmath.Vec3) float64 { return p.X }, nil
	case "y":
		return func(p vmath.Vec3) float64 { return p.Y }, nil
	case "z":
		return func(p vmath.Vec3) float64 { return p.Z }, nil
	case "pi", "PI":
		return constant(math.Pi), nil
	case "e", "E":
		return constant(math.E), nil
	}
	return nil, fmt.Errorf("%w %q at col %d", ErrUnknown, n.name, n.pos+1)
}

func (n nodeIdent) String() string { return canonical(n.name) }

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) compile() (Scalar, error) {
	x, err := n.x.compile()
	if err != nil {
		return nil, err
	}
	if n.op == '+' {
		return x, nil
	}
	if isConst(n.x) {
		return constant(-x(vmath.Vec3{})), nil
	}
	return func(p vmath.Vec3) float64 { return -x(p) }, nil
}

func (n nodeUnary) String() string { return "(" + string(n.op) + n.x.String() + ")" }

type nodeBinary struct {
	op    byte
	left  node
	right node
}

func (n nodeBinary) compile() (Scalar, error) {
	a, err := n.left.compile()
	if err != nil {
		return nil, err
	}
	b, err := n.right.compile()
	if err != nil {
		return nil, err
	}

	var fn Scalar
	switch n.op {
	case '+':
		fn = func(p vmath.Vec3) float64 { return a(p) + b(p) }
	case '-':
		fn = func(p vmath.Vec3) float64 { return a(p) - b(p) }
	case '*':
		fn = func(p vmath.Vec3) float64 { return a(p) * b(p) }
	case '/':
		fn = func(p vmath.Vec3) float64 { return a(p) / b(p) }
	case '^':
		fn = func(p vmath.Vec3) float64 { return math.Pow(a(p), b(p)) }
	default:
		return nil, fmt.Errorf("%w: operator %q", ErrParse, n.op)
	}
	if isConst(n.left) && isConst(n.right) {
		return constant(fn(vmath.Vec3{})), nil
	}
	return fn, nil
}

func (n nodeBinary) String() string {
	return "(" + n.left.String() + " " + string(n.op) + " " + n.right.String() + ")"
}

type nodeCall struct {
	name string
	args []node
	pos  int
}

func (n nodeCall) compile() (Scalar, error) {
	name := canonical(n.name)
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w function %q at col %d", ErrUnknown, n.name, n.pos+1)
	}
	if len(n.args) < b.minArgs || (b.maxArgs >= 0 && len(n.args) > b.maxArgs) {
		return nil, fmt.Errorf("%w: %s takes %s, got %d", ErrArity, name, b.arity(), len(n.args))
	}

	args := make([]Scalar, len(n.args))
	for i, a := range n.args {
		fn, err := a.compile()
		if err != nil {
			return nil, err
		}
		args[i] = fn
	}

	var fn Scalar
	switch {
	case b.fn1 != nil:
		f, x := b.fn1, args[0]
		fn = func(p vmath.Vec3) float64 { return f(x(p)) }
	case b.fn2 != nil:
		f, x, y := b.fn2, args[0], args[1]
		fn = func(p vmath.Vec3) float64 { return f(x(p), y(p)) }
	default:
		f := b.fnN
		fn = func(p vmath.Vec3) float64 {
			vals := make([]float64, len(args))
			for i, a := range args {
				vals[i] = a(p)
			}
			return f(vals)
		}
	}

	for _, a := range n.args {
		if !isConst(a) {
			return fn, nil
		}
	}
	return constant(fn(vmath.Vec3{})), nil
}

func (n nodeCall) String() string {
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		parts[i] = a.String()
	}
	return canonical(n.name) + "(" + strings.Join(parts, ", ") + ")"
}

func constant(v float64) Scalar { return func(vmath.Vec3) float64 { return v } }

// isConst reports whether n contains no coordinate symbol.
func isConst(n node) bool {
	switch n := n.(type) {
	case nodeNumber:
		return true
	case nodeIdent:
		switch canonical(n.name) {
		case "x", "y", "z":
			return false
		}
		return true
	case nodeUnary:
		return isConst(n.x)
	case nodeBinary:
		return isConst(n.left) && isConst(n.right)
	case nodeCall:
		for _, a := range n.args {
			if !isConst(a) {
				return false
			}
		}
		return true
	}
	return false
}

// canonical strips the v. and Math. prefixes accepted for compatibility with
// JavaScript-flavoured input.
func canonical(name string) string {
	if s, ok := strings.CutPrefix(name, "v."); ok {
		return s
	}
	if s, ok := strings.CutPrefix(name, "Math."); ok {
		return s
	}
	return name
}
