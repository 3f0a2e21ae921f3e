package expr

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
	// ErrUnknown is returned for identifiers outside the symbol table.
	ErrUnknown = errors.New("unknown identifier")
	// ErrArity is returned when a function is called with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

type parser struct {
	l   lexer
	cur token
}

func parse(src string) (node, error) {
	p := &parser{l: lexer{s: src}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) unexpected() error {
	switch p.cur.kind {
	case tokEOF:
		return fmt.Errorf("%w: unexpected end of input", ErrParse)
	default:
		return fmt.Errorf("%w: unexpected %q at col %d", ErrParse, p.cur.text, p.cur.pos+1)
	}
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// Unary minus binds looser than ^, so -x^2 is -(x^2).
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		name := p.cur.text
		pos := p.cur.pos
		p.next()
		if p.cur.kind != tokLParen {
			return nodeIdent{name: name, pos: pos}, nil
		}
		p.next()
		var args []node
		if p.cur.kind != tokRParen {
			for {
				ex, err := p.parseSum()
				if err != nil {
					return nil, err
				}
				args = append(args, ex)
				if p.cur.kind == tokComma {
					p.next()
					continue
				}
				break
			}
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' at col %d", ErrParse, p.cur.pos+1)
		}
		p.next()
		return nodeCall{name: name, args: args, pos: pos}, nil
	case tokLParen:
		p.next()
		ex, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' at col %d", ErrParse, p.cur.pos+1)
		}
		p.next()
		return ex, nil
	default:
		return nil, p.unexpected()
	}
}
