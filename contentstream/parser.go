package contentstream

import (
	"strconv"

	"github.com/tsawler/transmute/core"
)

// Operation is a single content stream instruction: an operator name
// preceded by the operands that were pushed before it.
type Operation struct {
	Operator string
	Operands []core.Object
}

// Parser tokenizes a decoded content stream into operations.
type Parser struct {
	data     []byte
	pos      int
	operands []core.Object
}

// NewParser returns a parser over a decoded content stream.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse consumes the whole stream and returns its operations in order.
// Unrecognized bytes are skipped; a malformed operand drops only itself.
func (p *Parser) Parse() []Operation {
	var ops []Operation
	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			break
		}

		c := p.data[p.pos]
		switch {
		case c == '%':
			p.skipComment()
		case isOperatorStart(c):
			op := p.readOperator()
			ops = append(ops, Operation{Operator: op, Operands: p.operands})
			p.operands = nil
		default:
			obj, ok := p.parseOperand()
			if ok {
				p.operands = append(p.operands, obj)
			} else {
				p.pos++
			}
		}
	}
	return ops
}

// parseOperand reads a single operand at the current position. The second
// return is false when the byte does not begin anything parseable.
func (p *Parser) parseOperand() (core.Object, bool) {
	c := p.data[p.pos]
	switch {
	case c == '(':
		return p.parseString(), true
	case c == '/':
		return p.parseName(), true
	case c == '[':
		return p.parseArray(), true
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, false
	}
}

// parseString reads a literal string. The returned bytes are the raw
// payload between the balanced parentheses: escape sequences are left
// unresolved so that character decoding can happen before unescaping.
// The backslash is honored only so that escaped parentheses do not
// disturb the nesting count.
func (p *Parser) parseString() core.String {
	p.pos++ // opening paren
	var raw []byte
	depth := 1
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '\\' && p.pos+1 < len(p.data) {
			raw = append(raw, c, p.data[p.pos+1])
			p.pos += 2
			continue
		}
		if c == '(' {
			depth++
		} else if c == ')' {
			depth--
			if depth == 0 {
				p.pos++
				break
			}
		}
		raw = append(raw, c)
		p.pos++
	}
	return core.String(raw)
}

func (p *Parser) parseName() core.Name {
	p.pos++ // slash
	start := p.pos
	for p.pos < len(p.data) && !isWhitespace(p.data[p.pos]) && !isDelimiter(p.data[p.pos]) {
		p.pos++
	}
	return core.Name(p.data[start:p.pos])
}

func (p *Parser) parseArray() core.Array {
	p.pos++ // opening bracket
	var arr core.Array
	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] == ']' {
			p.pos++
			break
		}
		obj, ok := p.parseOperand()
		if !ok {
			p.pos++
			continue
		}
		arr = append(arr, obj)
	}
	return arr
}

func (p *Parser) parseNumber() (core.Object, bool) {
	start := p.pos
	if p.data[p.pos] == '-' || p.data[p.pos] == '+' {
		p.pos++
	}
	isReal := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !isReal {
			isReal = true
			p.pos++
		} else {
			break
		}
	}
	tok := string(p.data[start:p.pos])
	if isReal {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, false
		}
		return core.Real(f), true
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, false
	}
	return core.Int(n), true
}

func (p *Parser) readOperator() string {
	start := p.pos
	for p.pos < len(p.data) && isOperatorStart(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

func (p *Parser) skipComment() {
	for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
		p.pos++
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isOperatorStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '\'' || c == '"' || c == '*'
}
