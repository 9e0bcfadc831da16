// Package jtparse parses JSON text into jtvalue trees.
//
// Nesting depth is caller-controlled, so the parser never descends
// recursively. A single scan over the byte buffer is driven by an explicit
// parse mode (what token class is legal next), a stack of partially-built
// containers, and a parallel stack of object keys awaiting their value.
// Parsing input nested 100,000 levels deep uses constant call-stack depth.
//
// The grammar is RFC 8259 with documented deviations: whitespace around the
// top-level document is rejected, numbers whose exponent overflows to
// infinity become null instead of failing, and duplicate object keys resolve
// last-write-wins. Errors are *jterr.Error values carrying the byte offset
// of the offending input; no partial value is ever returned.
package jtparse

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lattice-substrate/jsontree/jterr"
	"github.com/lattice-substrate/jsontree/jtvalue"
)

// mode is the parser's current expectation.
type mode int

const (
	expectValue mode = iota
	expectValueOrClose
	expectKey
	expectKeyOrClose
	expectCommaOrCloseList
	expectCommaOrCloseObject
)

type parser struct {
	data       []byte
	pos        int
	mode       mode
	containers []*jtvalue.Value
	keys       []string
}

// Parse consumes data as one complete JSON document and returns the value
// tree. The document must not be surrounded by whitespace; whitespace is
// insignificant only between tokens inside a container.
func Parse(data []byte) (*jtvalue.Value, error) {
	p := &parser{data: data, mode: expectValue}

	for {
		if p.pos >= len(p.data) {
			return nil, jterr.New(jterr.UnexpectedEOF, p.pos, "unexpected end of input")
		}
		c := p.data[p.pos]

		// done holds the value finished by this step, if any.
		var done *jtvalue.Value

		switch {
		case isSpace(c) && len(p.containers) > 0:
			p.pos++
			continue

		case c == '{' && p.wantValue():
			p.pos++
			p.mode = expectKeyOrClose
			p.containers = append(p.containers, jtvalue.Object(nil))
			continue

		case c == '}' && (p.mode == expectCommaOrCloseObject || p.mode == expectKeyOrClose):
			p.pos++
			done = p.pop()

		case c == ',' && (p.mode == expectCommaOrCloseList || p.mode == expectCommaOrCloseObject):
			if p.mode == expectCommaOrCloseList {
				p.mode = expectValue
			} else {
				p.mode = expectKey
			}
			p.pos++
			continue

		case c == '[' && p.wantValue():
			p.pos++
			p.mode = expectValueOrClose
			p.containers = append(p.containers, jtvalue.List())
			continue

		case c == ']' && (p.mode == expectCommaOrCloseList || p.mode == expectValueOrClose):
			p.pos++
			done = p.pop()

		case c == '"' && (p.wantValue() || p.wantKey()):
			s, err := p.scanString()
			if err != nil {
				return nil, err
			}
			if p.wantKey() {
				if err := p.consumeColon(); err != nil {
					return nil, err
				}
				p.keys = append(p.keys, s)
				p.mode = expectValue
				continue
			}
			done = jtvalue.String(s)

		case (c == '-' || isDigit(c)) && p.wantValue():
			v, err := p.scanNumber()
			if err != nil {
				return nil, err
			}
			done = v

		case c == 't' && p.wantValue() && p.hasKeyword("true"):
			p.pos += 4
			done = jtvalue.Bool(true)

		case c == 'f' && p.wantValue() && p.hasKeyword("false"):
			p.pos += 5
			done = jtvalue.Bool(false)

		case c == 'n' && p.wantValue() && p.hasKeyword("null"):
			p.pos += 4
			done = jtvalue.Null()

		case c == '}':
			return nil, jterr.New(jterr.UnexpectedClose, p.pos, "unexpected closing brace")

		case c == ']':
			return nil, jterr.New(jterr.UnexpectedClose, p.pos, "unexpected closing bracket")

		default:
			return nil, jterr.Newf(jterr.UnexpectedChar, p.pos, "unexpected character %q", string(rune(c)))
		}

		// A value finished: attach it to the enclosing container, or end the
		// parse when there is none.
		if n := len(p.containers); n > 0 {
			top := p.containers[n-1]
			if top.Kind() == jtvalue.KindList {
				_ = top.Append(done)
				p.mode = expectCommaOrCloseList
			} else {
				key := p.keys[len(p.keys)-1]
				p.keys = p.keys[:len(p.keys)-1]
				_ = top.SetMember(key, done)
				p.mode = expectCommaOrCloseObject
			}
			continue
		}
		if p.pos == len(p.data) {
			return done, nil
		}
		return nil, jterr.New(jterr.TrailingContent, p.pos, "unexpected input after top-level value")
	}
}

// ParseString is Parse over a string.
func ParseString(s string) (*jtvalue.Value, error) {
	return Parse([]byte(s))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}

func (p *parser) wantValue() bool {
	return p.mode == expectValue || p.mode == expectValueOrClose
}

func (p *parser) wantKey() bool {
	return p.mode == expectKey || p.mode == expectKeyOrClose
}

func (p *parser) pop() *jtvalue.Value {
	v := p.containers[len(p.containers)-1]
	p.containers = p.containers[:len(p.containers)-1]
	return v
}

func (p *parser) hasKeyword(kw string) bool {
	return p.pos+len(kw) <= len(p.data) && string(p.data[p.pos:p.pos+len(kw)]) == kw
}

// scanString decodes the string starting at the opening quote under p.pos.
// Verbatim runs are copied in one piece up to the next quote, backslash, or
// control character; escapes are resolved in between.
func (p *parser) scanString() (string, error) {
	p.pos++ // opening quote

	var sb strings.Builder
	for {
		start := p.pos
		for p.pos < len(p.data) {
			c := p.data[p.pos]
			if c == '"' || c == '\\' || isControl(c) {
				break
			}
			p.pos++
		}
		if p.pos >= len(p.data) {
			return "", jterr.New(jterr.MissingEndQuote, p.pos, "missing end quote")
		}
		sb.Write(p.data[start:p.pos])

		switch c := p.data[p.pos]; {
		case c == '"':
			p.pos++
			return sb.String(), nil
		case c == '\\':
			r, err := p.scanEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		default:
			return "", jterr.Newf(jterr.UnexpectedChar, p.pos, "illegal control character 0x%02x in string", c)
		}
	}
}

// scanEscape resolves the escape sequence whose backslash is under p.pos.
func (p *parser) scanEscape() (rune, error) {
	start := p.pos
	if start+1 >= len(p.data) {
		return 0, jterr.New(jterr.InvalidEscape, start, "missing escape sequence")
	}
	p.pos = start + 2

	switch c := p.data[start+1]; c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return p.scanUnicodeEscape()
	default:
		return 0, jterr.Newf(jterr.InvalidEscape, start, "invalid escape sequence %q", string(rune(c)))
	}
}

// scanUnicodeEscape resolves \uXXXX with p.pos just past the "\u". A high
// surrogate immediately followed by a \uXXXX low surrogate combines into one
// supplementary-plane code point; a code point that is no valid scalar on
// its own (a lone surrogate) becomes U+FFFD.
func (p *parser) scanUnicodeEscape() (rune, error) {
	hi, err := p.readHex4()
	if err != nil {
		return 0, err
	}

	cp := hi
	if hi >= 0xD800 && hi < 0xDC00 &&
		p.pos+1 < len(p.data) && p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u' {
		save := p.pos
		p.pos += 2
		lo, err := p.readHex4()
		if err != nil {
			return 0, err
		}
		if lo >= 0xDC00 && lo < 0xE000 {
			cp = 0x10000 + (lo - 0xDC00) + (hi-0xD800)*1024
		} else {
			// Not a low surrogate: keep the first code point, leave the
			// second escape to be scanned on its own.
			p.pos = save
		}
	}

	if !utf8.ValidRune(rune(cp)) {
		return utf8.RuneError, nil
	}
	return rune(cp), nil
}

// readHex4 reads exactly 4 hex digits at p.pos.
func (p *parser) readHex4() (uint32, error) {
	if p.pos+4 > len(p.data) {
		return 0, jterr.New(jterr.InvalidHex, p.pos, "invalid hex digits in \\u escape")
	}
	v, err := strconv.ParseUint(string(p.data[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		return 0, jterr.Newf(jterr.InvalidHex, p.pos, "invalid hex digits %q in \\u escape", p.data[p.pos:p.pos+4])
	}
	p.pos += 4
	return uint32(v), nil
}

// consumeColon skips whitespace after an object key and consumes the colon.
func (p *parser) consumeColon() error {
	for p.pos < len(p.data) {
		switch c := p.data[p.pos]; {
		case isSpace(c):
			p.pos++
		case c == ':':
			p.pos++
			return nil
		default:
			return jterr.Newf(jterr.MissingColon, p.pos, "missing colon after object key, got %q", string(rune(c)))
		}
	}
	return jterr.New(jterr.MissingColon, p.pos, "missing colon after object key")
}

// scanNumber scans a number starting at p.pos. Digits accumulate into a
// float64 directly: integer digits by multiply-and-add, fractional digits by
// division with a growing power of ten, and the exponent by one final
// multiplication. A magnitude that overflows to infinity degrades the result
// to null rather than failing.
func (p *parser) scanNumber() (*jtvalue.Value, error) {
	neg := p.data[p.pos] == '-'
	if neg {
		p.pos++
	}
	if p.pos >= len(p.data) {
		return nil, jterr.New(jterr.UnexpectedEOF, p.pos, "unexpected end of input")
	}

	c := p.data[p.pos]
	if !isDigit(c) {
		return nil, jterr.Newf(jterr.UnexpectedChar, p.pos, "unexpected character %q", string(rune(c)))
	}
	if c == '0' && p.pos+1 < len(p.data) && isDigit(p.data[p.pos+1]) {
		return nil, jterr.New(jterr.LeadingZero, p.pos, "illegal leading zero")
	}

	num := float64(c - '0')
	decimalPlaces := 0

scan:
	for {
		p.pos++
		if p.pos >= len(p.data) {
			break
		}
		switch c := p.data[p.pos]; {
		case isDigit(c) && decimalPlaces > 0:
			num += float64(c-'0') / math.Pow(10, float64(decimalPlaces))
			decimalPlaces++
		case isDigit(c):
			num = num*10 + float64(c-'0')
		case c == '.' && decimalPlaces == 0:
			decimalPlaces = 1
		case c == 'e' || c == 'E':
			p.pos++
			if p.pos >= len(p.data) {
				return nil, jterr.New(jterr.UnexpectedEOF, p.pos, "unexpected end of input")
			}
			ec := p.data[p.pos]
			var exp float64
			switch {
			case isDigit(ec):
				exp = float64(ec - '0')
			case ec == '-' || ec == '+':
				exp = 0
			default:
				return nil, jterr.Newf(jterr.UnexpectedChar, p.pos, "unexpected character %q", string(rune(ec)))
			}
			expNeg := ec == '-'
			p.pos++
			for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
				exp = exp*10 + float64(p.data[p.pos]-'0')
				p.pos++
			}
			if expNeg {
				exp = -exp
			}
			num *= math.Pow(10, exp)
			break scan
		default:
			break scan
		}
	}

	if neg {
		num = -num
	}
	return jtvalue.FromFloat(num), nil
}
