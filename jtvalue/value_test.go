package jtvalue_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-substrate/jsontree/jterr"
	"github.com/lattice-substrate/jsontree/jtnum"
	"github.com/lattice-substrate/jsontree/jtvalue"
)

func num(t *testing.T, f float64) *jtvalue.Value {
	t.Helper()
	n, err := jtnum.New(f)
	require.NoError(t, err)
	return jtvalue.Number(n)
}

func classOf(t *testing.T, err error) jterr.Class {
	t.Helper()
	var je *jterr.Error
	require.ErrorAs(t, err, &je)
	return je.Class
}

func TestConstructorsAndKinds(t *testing.T) {
	require.Equal(t, jtvalue.KindNull, jtvalue.Null().Kind())
	require.Equal(t, jtvalue.KindBool, jtvalue.Bool(true).Kind())
	require.Equal(t, jtvalue.KindNumber, num(t, 1).Kind())
	require.Equal(t, jtvalue.KindString, jtvalue.String("hi").Kind())
	require.Equal(t, jtvalue.KindList, jtvalue.List().Kind())
	require.Equal(t, jtvalue.KindObject, jtvalue.Object(nil).Kind())
	require.True(t, jtvalue.Null().IsNull())
	require.False(t, jtvalue.Bool(false).IsNull())
}

func TestZeroValueIsNull(t *testing.T) {
	var v jtvalue.Value
	require.True(t, v.IsNull())
}

func TestFromFloatDegradesToNull(t *testing.T) {
	require.True(t, jtvalue.FromFloat(math.NaN()).IsNull())
	require.True(t, jtvalue.FromFloat(math.Inf(1)).IsNull())
	require.True(t, jtvalue.FromFloat(math.Inf(-1)).IsNull())

	v := jtvalue.FromFloat(2.5)
	require.Equal(t, jtvalue.KindNumber, v.Kind())
	f, err := v.AsNumber()
	require.NoError(t, err)
	require.Equal(t, 2.5, f)
}

func TestFromInt(t *testing.T) {
	v := jtvalue.FromInt(-42)
	f, err := v.AsNumber()
	require.NoError(t, err)
	require.Equal(t, -42.0, f)
}

func TestConversionsMismatch(t *testing.T) {
	v := num(t, 5)

	_, err := v.AsBool()
	require.Equal(t, jterr.WrongKind, classOf(t, err))
	_, err = v.AsString()
	require.Equal(t, jterr.WrongKind, classOf(t, err))
	_, err = v.AsList()
	require.Equal(t, jterr.WrongKind, classOf(t, err))
	_, err = v.AsObject()
	require.Equal(t, jterr.WrongKind, classOf(t, err))
	_, err = jtvalue.Null().AsNumber()
	require.Equal(t, jterr.WrongKind, classOf(t, err))
}

func TestConversionsMatch(t *testing.T) {
	b, err := jtvalue.Bool(true).AsBool()
	require.NoError(t, err)
	require.True(t, b)

	s, err := jtvalue.String("hi").AsString()
	require.NoError(t, err)
	require.Equal(t, "hi", s)

	n, err := num(t, 5.1).AsFinite()
	require.NoError(t, err)
	require.Equal(t, 5.1, n.Float())

	elems, err := jtvalue.List(jtvalue.Null(), jtvalue.Bool(true)).AsList()
	require.NoError(t, err)
	require.Len(t, elems, 2)

	members, err := jtvalue.Object(map[string]*jtvalue.Value{"k": jtvalue.Null()}).AsObject()
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestListIndexing(t *testing.T) {
	v := jtvalue.List(num(t, 1), jtvalue.Null(), num(t, 4))

	e, err := v.At(2)
	require.NoError(t, err)
	f, err := e.AsNumber()
	require.NoError(t, err)
	require.Equal(t, 4.0, f)

	_, err = v.At(3)
	require.Equal(t, jterr.IndexRange, classOf(t, err))
	_, err = v.At(-1)
	require.Equal(t, jterr.IndexRange, classOf(t, err))
	_, err = jtvalue.Null().At(0)
	require.Equal(t, jterr.WrongKind, classOf(t, err))

	require.NoError(t, v.SetAt(1, jtvalue.String("mid")))
	e, err = v.At(1)
	require.NoError(t, err)
	s, err := e.AsString()
	require.NoError(t, err)
	require.Equal(t, "mid", s)

	err = v.SetAt(9, jtvalue.Null())
	require.Equal(t, jterr.IndexRange, classOf(t, err))

	require.NoError(t, v.Append(jtvalue.Bool(false)))
	n, err := v.Len()
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestObjectKeyAccess(t *testing.T) {
	v := jtvalue.Object(map[string]*jtvalue.Value{"hi": num(t, 5.1)})

	m, err := v.Member("hi")
	require.NoError(t, err)
	f, err := m.AsNumber()
	require.NoError(t, err)
	require.Equal(t, 5.1, f)

	_, err = v.Member("absent")
	require.Equal(t, jterr.MissingKey, classOf(t, err))
	_, err = jtvalue.List().Member("hi")
	require.Equal(t, jterr.WrongKind, classOf(t, err))
}

// The immutable lookup fails on an absent key; the mutable lookup upserts
// null. Both behaviors are part of the contract.
func TestMemberOrInsertUpserts(t *testing.T) {
	v := jtvalue.Object(nil)

	m, err := v.MemberOrInsert("fresh")
	require.NoError(t, err)
	require.True(t, m.IsNull())

	n, err := v.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// A second lookup returns the same child, not a new null.
	m2, err := v.MemberOrInsert("fresh")
	require.NoError(t, err)
	require.Same(t, m, m2)

	_, err = jtvalue.Null().MemberOrInsert("k")
	require.Equal(t, jterr.WrongKind, classOf(t, err))
}

func TestSetMemberLastWriteWins(t *testing.T) {
	v := jtvalue.Object(nil)
	require.NoError(t, v.SetMember("k", num(t, 1)))
	require.NoError(t, v.SetMember("k", num(t, 2)))

	m, err := v.Member("k")
	require.NoError(t, err)
	f, err := m.AsNumber()
	require.NoError(t, err)
	require.Equal(t, 2.0, f)

	require.NoError(t, v.Delete("k"))
	_, err = v.Member("k")
	require.Equal(t, jterr.MissingKey, classOf(t, err))
	require.NoError(t, v.Delete("k")) // absent key is fine
	require.Error(t, jtvalue.Null().Delete("k"))
}

func TestLenOnScalar(t *testing.T) {
	_, err := jtvalue.Bool(true).Len()
	require.Equal(t, jterr.WrongKind, classOf(t, err))
}

func TestWrongKindErrorIsStructured(t *testing.T) {
	_, err := jtvalue.Null().AsList()
	var je *jterr.Error
	require.True(t, errors.As(err, &je))
	require.Equal(t, -1, je.Offset)
	require.Contains(t, je.Message, "null")
	require.Contains(t, je.Message, "list")
}
