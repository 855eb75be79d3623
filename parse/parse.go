// Package parse reads SNBT text into IR nodes.
//
// The grammar is the one the encode package emits: compounds {k:v},
// lists, typed arrays [B;..] [I;..] [L;..], quoted strings with
// backslash escapes, suffixed and bare numeric literals, and the
// true/false keywords. Since numeric-ness is syntactic in SNBT source,
// a bare 123 parses as an Int here; re-typing of already-normalized
// Str values never happens (that is the normalize package's contract).
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ProjectUnified/CraftItem/debug"
	"github.com/ProjectUnified/CraftItem/ir"
	"github.com/ProjectUnified/CraftItem/token"
)

var ErrSyntax = errors.New("snbt syntax error")

func Parse(d []byte) (*ir.Node, error) {
	p := &parser{d: d}
	p.ws()
	if p.eof() {
		return nil, p.errf("empty input")
	}
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	p.ws()
	if !p.eof() {
		return nil, p.errf("trailing data")
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes -> %s\n", len(d), res.Type)
	}
	return res, nil
}

type parser struct {
	d   []byte
	off int
}

func (p *parser) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, msg, p.off)
}

func (p *parser) eof() bool {
	return p.off >= len(p.d)
}

func (p *parser) ws() {
	for !p.eof() {
		switch p.d[p.off] {
		case ' ', '\t', '\n', '\r':
			p.off++
		default:
			return
		}
	}
}

func (p *parser) value() (*ir.Node, error) {
	if p.eof() {
		return nil, p.errf("unexpected end of input")
	}
	switch p.d[p.off] {
	case '{':
		return p.compound()
	case '[':
		if kind, ok := p.arrayKind(); ok {
			return p.array(kind)
		}
		return p.list()
	case '"', '\'':
		s, n, err := token.Unquote(p.d[p.off:])
		if err != nil {
			return nil, p.errf("%v", err)
		}
		p.off += n
		return ir.FromString(s), nil
	default:
		return p.bare()
	}
}

// arrayKind checks for the [B; [I; [L; prefixes without consuming.
func (p *parser) arrayKind() (byte, bool) {
	if p.off+2 >= len(p.d) {
		return 0, false
	}
	kind := p.d[p.off+1]
	switch kind {
	case 'B', 'I', 'L':
		return kind, p.d[p.off+2] == ';'
	default:
		return 0, false
	}
}

func (p *parser) compound() (*ir.Node, error) {
	p.off++ // '{'
	res := ir.Compound()
	p.ws()
	if !p.eof() && p.d[p.off] == '}' {
		p.off++
		return res, nil
	}
	for {
		p.ws()
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		p.ws()
		if p.eof() || p.d[p.off] != ':' {
			return nil, p.errf("expected ':' after key %q", key)
		}
		p.off++
		p.ws()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Set(key, v)
		p.ws()
		if p.eof() {
			return nil, p.errf("unterminated compound")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return res, nil
		default:
			return nil, p.errf("expected ',' or '}'")
		}
	}
}

func (p *parser) key() (string, error) {
	if p.eof() {
		return "", p.errf("expected key")
	}
	switch p.d[p.off] {
	case '"', '\'':
		s, n, err := token.Unquote(p.d[p.off:])
		if err != nil {
			return "", p.errf("%v", err)
		}
		p.off += n
		return s, nil
	}
	start := p.off
	for !p.eof() && !delim(p.d[p.off]) && p.d[p.off] != ':' {
		p.off++
	}
	if p.off == start {
		return "", p.errf("expected key")
	}
	return string(p.d[start:p.off]), nil
}

func (p *parser) list() (*ir.Node, error) {
	p.off++ // '['
	res := ir.FromSlice(nil)
	p.ws()
	if !p.eof() && p.d[p.off] == ']' {
		p.off++
		return res, nil
	}
	for {
		p.ws()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Append(v)
		p.ws()
		if p.eof() {
			return nil, p.errf("unterminated list")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return res, nil
		default:
			return nil, p.errf("expected ',' or ']'")
		}
	}
}

func (p *parser) array(kind byte) (*ir.Node, error) {
	p.off += 3 // '[', kind, ';'
	var bytes []int8
	var ints []int32
	var longs []int64
	p.ws()
	if !p.eof() && p.d[p.off] == ']' {
		p.off++
		return arrayNode(kind, bytes, ints, longs), nil
	}
	for {
		p.ws()
		tok, err := p.bareToken()
		if err != nil {
			return nil, err
		}
		switch kind {
		case 'B':
			n, err := strconv.ParseInt(token.TrimSuffixFold(tok, token.SuffixByte), 10, 8)
			if err != nil {
				return nil, p.errf("bad byte array element %q", tok)
			}
			bytes = append(bytes, int8(n))
		case 'I':
			n, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, p.errf("bad int array element %q", tok)
			}
			ints = append(ints, int32(n))
		case 'L':
			n, err := strconv.ParseInt(token.TrimSuffixFold(tok, token.SuffixLong), 10, 64)
			if err != nil {
				return nil, p.errf("bad long array element %q", tok)
			}
			longs = append(longs, n)
		}
		p.ws()
		if p.eof() {
			return nil, p.errf("unterminated array")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return arrayNode(kind, bytes, ints, longs), nil
		default:
			return nil, p.errf("expected ',' or ']'")
		}
	}
}

func arrayNode(kind byte, bytes []int8, ints []int32, longs []int64) *ir.Node {
	switch kind {
	case 'B':
		return ir.FromByteArray(bytes)
	case 'I':
		return ir.FromIntArray(ints)
	default:
		return ir.FromLongArray(longs)
	}
}

func (p *parser) bare() (*ir.Node, error) {
	tok, err := p.bareToken()
	if err != nil {
		return nil, err
	}
	switch tok {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	if body, suffix, ok := token.SplitNumberSuffix(tok); ok {
		if n, ok := suffixed(body, suffix); ok {
			return n, nil
		}
	}
	if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return ir.FromInt(int32(n)), nil
	}
	if strings.ContainsAny(tok, ".eE") {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return ir.FromDouble(f), nil
		}
	}
	return ir.FromString(tok), nil
}

func (p *parser) bareToken() (string, error) {
	start := p.off
	for !p.eof() && !delim(p.d[p.off]) {
		p.off++
	}
	if p.off == start {
		return "", p.errf("expected value")
	}
	return string(p.d[start:p.off]), nil
}

func delim(c byte) bool {
	switch c {
	case ',', '}', ']', '{', '[', ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func suffixed(body string, suffix byte) (*ir.Node, bool) {
	switch suffix {
	case token.SuffixByte:
		if n, err := strconv.ParseInt(body, 10, 8); err == nil {
			return ir.FromByte(int8(n)), true
		}
	case token.SuffixShort:
		if n, err := strconv.ParseInt(body, 10, 16); err == nil {
			return ir.FromShort(int16(n)), true
		}
	case token.SuffixInt:
		if n, err := strconv.ParseInt(body, 10, 32); err == nil {
			return ir.FromInt(int32(n)), true
		}
	case token.SuffixLong:
		if n, err := strconv.ParseInt(body, 10, 64); err == nil {
			return ir.FromLong(n), true
		}
	case token.SuffixFloat:
		if f, err := strconv.ParseFloat(body, 32); err == nil {
			return ir.FromFloat(float32(f)), true
		}
	case token.SuffixDouble:
		if f, err := strconv.ParseFloat(body, 64); err == nil {
			return ir.FromDouble(f), true
		}
	}
	return nil, false
}
