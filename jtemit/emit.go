// Package jtemit renders jtvalue trees as JSON text.
//
// Two modes: compact inserts no whitespace; pretty writes a newline after
// every element and member, indents with one tab per nesting level, and puts
// a space after each key's colon. Empty lists and objects render as [] and
// {} in both modes.
//
// Like the parser, the writer walks with an explicit stack of remaining-work
// frames instead of recursion, so a tree nested 100,000 levels deep
// serializes at constant call-stack depth.
//
// Escaping on output: quote, backslash, and the named control characters map
// to their two-character escapes, remaining ASCII control characters to
// \u00xx; everything else, the full non-ASCII range included, passes through
// verbatim. Object member order in the output is unspecified. A nil *Value,
// as root or as a container child, renders as null.
package jtemit

import (
	"github.com/lattice-substrate/jsontree/jtvalue"
)

// Compact renders v with no inserted whitespace.
func Compact(v *jtvalue.Value) []byte {
	return AppendCompact(nil, v)
}

// Pretty renders v with newlines and tab indentation.
func Pretty(v *jtvalue.Value) []byte {
	return AppendPretty(nil, v)
}

// AppendCompact appends the compact rendering of v to buf.
func AppendCompact(buf []byte, v *jtvalue.Value) []byte {
	return appendValue(buf, v, false)
}

// AppendPretty appends the pretty rendering of v to buf.
func AppendPretty(buf []byte, v *jtvalue.Value) []byte {
	return appendValue(buf, v, true)
}

// frame is the remaining work for one open container.
type frame struct {
	isObject bool
	elems    []*jtvalue.Value            // remaining list elements
	keys     []string                    // remaining object keys, snapshot order
	obj      map[string]*jtvalue.Value
}

func appendValue(buf []byte, root *jtvalue.Value, pretty bool) []byte {
	var stack []*frame
	rootDone := false
	writeComma := false
	nlBeforeVal := false
	nlAfterVal := true

	for {
		// Pick the next value to emit, closing finished containers on the way.
		var next *jtvalue.Value
		if len(stack) == 0 {
			if rootDone {
				return buf
			}
			rootDone = true
			next = root
		} else {
			f := stack[len(stack)-1]
			if f.isObject {
				if len(f.keys) == 0 {
					stack = stack[:len(stack)-1]
					buf = maybeNewline(buf, nlAfterVal && pretty, len(stack))
					buf = append(buf, '}')
					nlAfterVal = true
					writeComma = true
					continue
				}
				key := f.keys[0]
				f.keys = f.keys[1:]

				if writeComma {
					buf = append(buf, ',')
					writeComma = false
				}
				buf = maybeNewline(buf, pretty, len(stack))
				buf = appendEscaped(buf, key)
				buf = append(buf, ':')
				nlBeforeVal = false
				if pretty {
					buf = append(buf, ' ')
				}
				next = f.obj[key]
			} else {
				if len(f.elems) == 0 {
					stack = stack[:len(stack)-1]
					buf = maybeNewline(buf, nlAfterVal && pretty, len(stack))
					buf = append(buf, ']')
					nlAfterVal = true
					writeComma = true
					continue
				}
				next = f.elems[0]
				f.elems = f.elems[1:]
			}
		}

		if writeComma {
			buf = append(buf, ',')
		}
		buf = maybeNewline(buf, nlBeforeVal && pretty, len(stack))
		nlBeforeVal = true
		nlAfterVal = true
		writeComma = true

		// A nil *Value reads as null, matching the nil handling in jtvalue's
		// Equal, Clone, and Release.
		if next == nil {
			buf = append(buf, "null"...)
			continue
		}

		switch next.Kind() {
		case jtvalue.KindNull:
			buf = append(buf, "null"...)
		case jtvalue.KindBool:
			b, _ := next.AsBool()
			if b {
				buf = append(buf, "true"...)
			} else {
				buf = append(buf, "false"...)
			}
		case jtvalue.KindNumber:
			n, _ := next.AsFinite()
			buf = n.Append(buf)
		case jtvalue.KindString:
			s, _ := next.AsString()
			buf = appendEscaped(buf, s)
		case jtvalue.KindList:
			elems, _ := next.AsList()
			buf = append(buf, '[')
			stack = append(stack, &frame{elems: elems})
			writeComma = false
			nlAfterVal = len(elems) > 0
		case jtvalue.KindObject:
			obj, _ := next.AsObject()
			keys := make([]string, 0, len(obj))
			for k := range obj {
				keys = append(keys, k)
			}
			buf = append(buf, '{')
			stack = append(stack, &frame{isObject: true, obj: obj, keys: keys})
			writeComma = false
			nlAfterVal = len(obj) > 0
		}
	}
}

func maybeNewline(buf []byte, write bool, depth int) []byte {
	if !write {
		return buf
	}
	buf = append(buf, '\n')
	for i := 0; i < depth; i++ {
		buf = append(buf, '\t')
	}
	return buf
}

// appendEscaped writes s as a quoted JSON string. Only the quote, the
// backslash, and ASCII control characters are escaped; multi-byte sequences
// pass through untouched.
func appendEscaped(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			buf = append(buf, '\\', '"')
		case c == '\\':
			buf = append(buf, '\\', '\\')
		case c == '\n':
			buf = append(buf, '\\', 'n')
		case c == '\r':
			buf = append(buf, '\\', 'r')
		case c == '\t':
			buf = append(buf, '\\', 't')
		case c == '\b':
			buf = append(buf, '\\', 'b')
		case c == '\f':
			buf = append(buf, '\\', 'f')
		case c < 0x20 || c == 0x7f:
			buf = append(buf, '\\', 'u', '0', '0', hexDigit(c>>4), hexDigit(c&0x0f))
		default:
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}

func hexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'a' + (b - 10)
}
