// Package jtnum provides Finite, a float64 wrapper whose invariant is that
// the wrapped value is never NaN or infinite.
//
// Finite is the only way to build the payload of a number value, so the
// invariant holds for every number reachable through a value tree. Formatting
// uses the shortest decimal form that round-trips the double; no fixed
// precision is imposed.
package jtnum

import (
	"errors"
	"math"
	"strconv"
)

// ErrNotFinite is returned by New for NaN and ±Inf inputs.
var ErrNotFinite = errors.New("jtnum: value is not a finite number")

// Finite wraps an IEEE 754 double that is guaranteed finite.
// The zero Finite is 0.
type Finite struct {
	f float64
}

// New returns a Finite wrapping f, or ErrNotFinite if f is NaN or infinite.
func New(f float64) (Finite, error) {
	if !IsFinite(f) {
		return Finite{}, ErrNotFinite
	}
	return Finite{f: f}, nil
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float returns the wrapped value.
func (n Finite) Float() float64 {
	return n.f
}

// String returns the shortest decimal text that parses back to the exact
// wrapped value.
func (n Finite) String() string {
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// Append appends the decimal text form of n to buf and returns the
// extended buffer.
func (n Finite) Append(buf []byte) []byte {
	return strconv.AppendFloat(buf, n.f, 'g', -1, 64)
}
