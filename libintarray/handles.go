////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/integerarray/bindings"
)

// status is the result code returned over the C ABI.
type status int

const (
	statusOK              status = 0
	statusInvalidHandle   status = 1
	statusInvalidArgument status = 2
)

// invalidLen is returned by arrayLen for an invalid handle.
const invalidLen = -1

// stateAccounting counts state strings handed across the C ABI and returned
// to IntegerArray_freeState.
var stateAccounting struct {
	allocated atomic.Int64
	freed     atomic.Int64
}

// toID converts a C handle into a tracker ID. The tracker issues positive int
// IDs, so the null handle and handles above math.MaxInt are rejected without a
// lookup.
func toID(handle uintptr) (int, bool) {
	if handle == 0 || uint64(handle) > math.MaxInt {
		return 0, false
	}
	return int(handle), true
}

// statusOf maps a bindings error to a status, logging anything that is not
// OK.
func statusOf(op string, handle uintptr, err error) status {
	if err == nil {
		return statusOK
	}

	jww.WARN.Printf("[LIBINTARRAY] %s on handle %d failed: %+v",
		op, handle, err)

	if errors.Is(err, bindings.ErrInvalidHandle) {
		return statusInvalidHandle
	}
	return statusInvalidArgument
}

func invalidHandle(op string, handle uintptr) status {
	return statusOf(op, handle,
		errors.Wrapf(bindings.ErrInvalidHandle, "handle %d out of range", handle))
}

// newArray constructs an IntegerArray and returns its handle.
func newArray() uintptr {
	return uintptr(bindings.NewIntegerArray().GetID())
}

// addValue appends value to the array addressed by handle.
func addValue(handle uintptr, value int32) status {
	id, ok := toID(handle)
	if !ok {
		return invalidHandle("add", handle)
	}
	return statusOf("add", handle, bindings.AddToIntegerArray(id, int(value)))
}

// renderState returns a fresh rendering of the array addressed by handle.
func renderState(handle uintptr) (string, status) {
	id, ok := toID(handle)
	if !ok {
		return "", invalidHandle("getState", handle)
	}

	state, err := bindings.GetIntegerArrayState(id)
	return state, statusOf("getState", handle, err)
}

// arrayLen returns the length of the array addressed by handle, or invalidLen.
func arrayLen(handle uintptr) int {
	id, ok := toID(handle)
	if !ok {
		invalidHandle("len", handle)
		return invalidLen
	}

	ia, err := bindings.GetIntegerArray(id)
	if statusOf("len", handle, err) != statusOK {
		return invalidLen
	}
	return ia.Len()
}

// deleteArray destroys the array addressed by handle. Deleting a handle a
// second time reports statusInvalidHandle.
func deleteArray(handle uintptr) status {
	id, ok := toID(handle)
	if !ok {
		return invalidHandle("delete", handle)
	}
	return statusOf("delete", handle, bindings.DeleteIntegerArray(id))
}

// setLogLevel sets the bindings log level.
func setLogLevel(level int) status {
	if err := bindings.LogLevel(level); err != nil {
		jww.ERROR.Printf("[LIBINTARRAY] %+v", err)
		return statusInvalidArgument
	}
	return statusOK
}

func stateAllocated() { stateAccounting.allocated.Add(1) }
func stateFreed()     { stateAccounting.freed.Add(1) }

// outstandingStates returns the number of state strings handed out that have
// not been freed.
func outstandingStates() int64 {
	return stateAccounting.allocated.Load() - stateAccounting.freed.Load()
}
