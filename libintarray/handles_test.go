////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/elixxir/integerarray/bindings"
)

func TestNewArray(t *testing.T) {
	h := newArray()
	require.NotZero(t, h)
	defer func() { require.Equal(t, statusOK, deleteArray(h)) }()

	state, s := renderState(h)
	require.Equal(t, statusOK, s)
	require.Equal(t, "[]", state)
	require.Equal(t, 0, arrayLen(h))
}

func TestAddValue(t *testing.T) {
	h := newArray()
	defer func() { require.Equal(t, statusOK, deleteArray(h)) }()

	require.Equal(t, statusOK, addValue(h, 5))
	require.Equal(t, statusOK, addValue(h, 3))

	state, s := renderState(h)
	require.Equal(t, statusOK, s)
	require.Equal(t, "[5, 3]", state)
	require.Equal(t, 2, arrayLen(h))
}

func TestAddValue_Extremes(t *testing.T) {
	h := newArray()
	defer func() { require.Equal(t, statusOK, deleteArray(h)) }()

	require.Equal(t, statusOK, addValue(h, math.MinInt32))
	require.Equal(t, statusOK, addValue(h, math.MaxInt32))

	state, _ := renderState(h)
	require.Equal(t, "[-2147483648, 2147483647]", state)
}

// Arrays addressed by different handles render independently.
func TestRenderState_Independent(t *testing.T) {
	a := newArray()
	defer func() { require.Equal(t, statusOK, deleteArray(a)) }()
	require.Equal(t, statusOK, addValue(a, 1))

	b := newArray()
	defer func() { require.Equal(t, statusOK, deleteArray(b)) }()
	require.Equal(t, statusOK, addValue(b, 2))

	stateA, _ := renderState(a)
	stateB, _ := renderState(b)
	require.Equal(t, "[1]", stateA)
	require.Equal(t, "[2]", stateB)
}

// Tests that null, out of range and never-issued handles are reported and
// never dereferenced.
func TestInvalidHandles(t *testing.T) {
	handles := []uintptr{0, math.MaxInt32, uintptr(math.MaxInt) + 1}

	for _, h := range handles {
		require.Equal(t, statusInvalidHandle, addValue(h, 1), "handle %d", h)

		state, s := renderState(h)
		require.Equal(t, statusInvalidHandle, s, "handle %d", h)
		require.Empty(t, state)

		require.Equal(t, invalidLen, arrayLen(h), "handle %d", h)
		require.Equal(t, statusInvalidHandle, deleteArray(h), "handle %d", h)
	}
}

// Tests that every handle the tracker can issue converts back to its ID and
// that handles beyond the ID range are rejected.
func TestToID(t *testing.T) {
	valid := []uintptr{1, math.MaxInt32, uintptr(math.MaxInt)}
	if math.MaxInt > math.MaxInt32 {
		valid = append(valid, uintptr(math.MaxInt32)+1)
	}
	for _, h := range valid {
		id, ok := toID(h)
		require.True(t, ok, "handle %d", h)
		require.Equal(t, h, uintptr(id))
	}

	for _, h := range []uintptr{0, uintptr(math.MaxInt) + 1, math.MaxUint} {
		_, ok := toID(h)
		require.False(t, ok, "handle %d", h)
	}
}

// Tests that a deleted handle cannot be used and deleting it again reports
// an invalid handle.
func TestDeleteArray(t *testing.T) {
	start := bindings.CountIntegerArrays()

	h := newArray()
	require.Equal(t, start+1, bindings.CountIntegerArrays())
	require.Equal(t, statusOK, addValue(h, 1))

	require.Equal(t, statusOK, deleteArray(h))
	require.Equal(t, start, bindings.CountIntegerArrays())

	require.Equal(t, statusInvalidHandle, addValue(h, 2))
	_, s := renderState(h)
	require.Equal(t, statusInvalidHandle, s)
	require.Equal(t, statusInvalidHandle, deleteArray(h))
}

func TestSetLogLevel(t *testing.T) {
	require.Equal(t, statusInvalidArgument, setLogLevel(-1))
	require.Equal(t, statusInvalidArgument, setLogLevel(7))
	require.Equal(t, statusOK, setLogLevel(2))
}
