// Package jsontree ties the value model, parser, and serializer together
// behind one import for callers that use JSON as a data-interchange
// primitive: parse a document, traverse or mutate the tree, render it back.
//
// The underlying packages are independently importable: jtvalue for the
// tagged-union model, jtparse for text → value, jtemit for value → text,
// jtnum for the finite-number invariant, jterr for the failure taxonomy.
package jsontree

import (
	"github.com/lattice-substrate/jsontree/jtemit"
	"github.com/lattice-substrate/jsontree/jtparse"
	"github.com/lattice-substrate/jsontree/jtvalue"
)

// Parse parses one complete JSON document.
func Parse(data []byte) (*jtvalue.Value, error) {
	return jtparse.Parse(data)
}

// ParseString parses one complete JSON document from a string.
func ParseString(s string) (*jtvalue.Value, error) {
	return jtparse.ParseString(s)
}

// Compact renders v as JSON with no inserted whitespace.
func Compact(v *jtvalue.Value) []byte {
	return jtemit.Compact(v)
}

// Pretty renders v as JSON with newlines and tab indentation.
func Pretty(v *jtvalue.Value) []byte {
	return jtemit.Pretty(v)
}

// Clone deep-copies v by serializing it and parsing the result. The copy is
// semantically equivalent by construction and the traversal reuses the
// stack-safe serializer and parser. Callers cloning on a hot path should
// prefer jtvalue's structural Clone, which skips the text intermediate.
func Clone(v *jtvalue.Value) (*jtvalue.Value, error) {
	return jtparse.Parse(jtemit.Compact(v))
}
