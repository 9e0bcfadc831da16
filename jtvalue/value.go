// Package jtvalue implements the in-memory JSON value model: a tagged union
// over null, boolean, number, string, list, and object.
//
// Values form a strict tree. Lists and objects own their children; children
// are moved in at construction or mutation time and are never shared between
// two parents. Object keys are unique and carry no ordering guarantee.
// Number payloads are jtnum.Finite, so no reachable value ever wraps NaN
// or an infinity.
//
// Trees can nest arbitrarily deep, so every whole-tree operation in this
// package (Equal, Clone, Release) walks with an explicit heap stack rather
// than recursion.
package jtvalue

import (
	"github.com/lattice-substrate/jsontree/jterr"
	"github.com/lattice-substrate/jsontree/jtnum"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the variant name as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  jtnum.Finite
	str  string
	list []*Value
	obj  map[string]*Value
}

// Null returns a new null value.
func Null() *Value {
	return &Value{}
}

// Bool returns a new boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Number returns a new number value wrapping n.
func Number(n jtnum.Finite) *Value {
	return &Value{kind: KindNumber, num: n}
}

// FromFloat returns a number value for f, degrading to null when f is NaN
// or infinite. This is the documented overflow policy, not an error path;
// use jtnum.New followed by Number to surface non-finite inputs instead.
func FromFloat(f float64) *Value {
	n, err := jtnum.New(f)
	if err != nil {
		return Null()
	}
	return Number(n)
}

// FromInt returns a number value for i. Every int64 is finite as a double,
// so the conversion cannot fail (magnitudes above 2^53 lose precision).
func FromInt(i int64) *Value {
	return FromFloat(float64(i))
}

// String returns a new string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// List returns a new list value owning elems.
func List(elems ...*Value) *Value {
	return &Value{kind: KindList, list: elems}
}

// Object returns a new object value owning members. A nil map is treated
// as empty.
func Object(members map[string]*Value) *Value {
	if members == nil {
		members = make(map[string]*Value)
	}
	return &Value{kind: KindObject, obj: members}
}

// Kind returns the variant held by v.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null variant.
func (v *Value) IsNull() bool {
	return v.kind == KindNull
}

func (v *Value) wrongKind(want Kind) *jterr.Error {
	return jterr.Newf(jterr.WrongKind, -1, "value is %s, not %s", v.kind, want)
}

// AsBool returns the boolean payload, or a WRONG_KIND error.
func (v *Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.wrongKind(KindBool)
	}
	return v.b, nil
}

// AsNumber returns the number payload as a float64, or a WRONG_KIND error.
func (v *Value) AsNumber() (float64, error) {
	if v.kind != KindNumber {
		return 0, v.wrongKind(KindNumber)
	}
	return v.num.Float(), nil
}

// AsFinite returns the number payload, or a WRONG_KIND error.
func (v *Value) AsFinite() (jtnum.Finite, error) {
	if v.kind != KindNumber {
		return jtnum.Finite{}, v.wrongKind(KindNumber)
	}
	return v.num, nil
}

// AsString returns the string payload, or a WRONG_KIND error.
func (v *Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.wrongKind(KindString)
	}
	return v.str, nil
}

// AsList returns the element slice, or a WRONG_KIND error. The slice is the
// value's own backing storage, not a copy.
func (v *Value) AsList() ([]*Value, error) {
	if v.kind != KindList {
		return nil, v.wrongKind(KindList)
	}
	return v.list, nil
}

// AsObject returns the member map, or a WRONG_KIND error. The map is the
// value's own backing storage, not a copy.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.kind != KindObject {
		return nil, v.wrongKind(KindObject)
	}
	return v.obj, nil
}

// Len returns the element or member count of a list or object.
func (v *Value) Len() (int, error) {
	switch v.kind {
	case KindList:
		return len(v.list), nil
	case KindObject:
		return len(v.obj), nil
	default:
		return 0, jterr.Newf(jterr.WrongKind, -1, "value is %s, not a container", v.kind)
	}
}

// At returns the list element at index i. It fails with WRONG_KIND on a
// non-list value and INDEX_RANGE when i is out of bounds.
func (v *Value) At(i int) (*Value, error) {
	if v.kind != KindList {
		return nil, v.wrongKind(KindList)
	}
	if i < 0 || i >= len(v.list) {
		return nil, jterr.Newf(jterr.IndexRange, -1, "index %d out of range for list of length %d", i, len(v.list))
	}
	return v.list[i], nil
}

// SetAt replaces the list element at index i.
func (v *Value) SetAt(i int, elem *Value) error {
	if v.kind != KindList {
		return v.wrongKind(KindList)
	}
	if i < 0 || i >= len(v.list) {
		return jterr.Newf(jterr.IndexRange, -1, "index %d out of range for list of length %d", i, len(v.list))
	}
	v.list[i] = elem
	return nil
}

// Append appends elems to a list value.
func (v *Value) Append(elems ...*Value) error {
	if v.kind != KindList {
		return v.wrongKind(KindList)
	}
	v.list = append(v.list, elems...)
	return nil
}

// Member returns the object member under key. It fails with WRONG_KIND on a
// non-object value and MISSING_KEY when the key is absent.
func (v *Value) Member(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, v.wrongKind(KindObject)
	}
	m, ok := v.obj[key]
	if !ok {
		return nil, jterr.Newf(jterr.MissingKey, -1, "object has no member %q", key)
	}
	return m, nil
}

// MemberOrInsert returns the object member under key, inserting a null value
// first when the key is absent. The immutable lookup (Member) fails on an
// absent key while this mutable lookup upserts; the asymmetry is deliberate.
func (v *Value) MemberOrInsert(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, v.wrongKind(KindObject)
	}
	m, ok := v.obj[key]
	if !ok {
		m = Null()
		v.obj[key] = m
	}
	return m, nil
}

// SetMember inserts or replaces the object member under key. A replaced
// member is dropped: last write wins.
func (v *Value) SetMember(key string, val *Value) error {
	if v.kind != KindObject {
		return v.wrongKind(KindObject)
	}
	v.obj[key] = val
	return nil
}

// Delete removes the object member under key, if present.
func (v *Value) Delete(key string) error {
	if v.kind != KindObject {
		return v.wrongKind(KindObject)
	}
	delete(v.obj, key)
	return nil
}
