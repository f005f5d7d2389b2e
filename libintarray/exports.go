////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/integerarray/bindings"
)

func init() {
	jww.INFO.Printf("IntegerArray library loaded...%s\t%s",
		bindings.GetVersion(), bindings.GetGitVersion())
}

// IntegerArray_new creates an empty array and returns its non-zero handle.
//
//export IntegerArray_new
func IntegerArray_new() C.uintptr_t {
	return C.uintptr_t(newArray())
}

// IntegerArray_add appends value to the array. Returns 0 on success and 1 if
// the handle is null, unknown or deleted.
//
//export IntegerArray_add
func IntegerArray_add(handle C.uintptr_t, value C.int) C.int {
	return C.int(addValue(uintptr(handle), int32(value)))
}

// IntegerArray_getState returns the array rendered as "[v0, v1, ..., vn]" in
// a newly allocated string owned by the caller, or NULL if the handle is
// invalid. The string stays valid until passed to IntegerArray_freeState.
//
//export IntegerArray_getState
func IntegerArray_getState(handle C.uintptr_t) *C.char {
	state, s := renderState(uintptr(handle))
	if s != statusOK {
		return nil
	}

	cState := C.CString(state)
	stateAllocated()
	return cState
}

// IntegerArray_freeState releases a string returned by IntegerArray_getState.
// NULL is ignored.
//
//export IntegerArray_freeState
func IntegerArray_freeState(state *C.char) {
	if state == nil {
		return
	}
	C.free(unsafe.Pointer(state))
	stateFreed()
}

// IntegerArray_len returns the number of values in the array, or -1 if the
// handle is invalid.
//
//export IntegerArray_len
func IntegerArray_len(handle C.uintptr_t) C.int {
	return C.int(arrayLen(uintptr(handle)))
}

// IntegerArray_delete destroys the array. Returns 0 on success and 1 if the
// handle is null, unknown or was already deleted.
//
//export IntegerArray_delete
func IntegerArray_delete(handle C.uintptr_t) C.int {
	return C.int(deleteArray(uintptr(handle)))
}

// IntegerArray_count returns the number of arrays not yet deleted.
//
//export IntegerArray_count
func IntegerArray_count() C.int {
	return C.int(bindings.CountIntegerArrays())
}

// IntegerArray_outstandingStates returns the number of strings returned by
// IntegerArray_getState that have not been freed.
//
//export IntegerArray_outstandingStates
func IntegerArray_outstandingStates() C.int64_t {
	return C.int64_t(outstandingStates())
}

// IntegerArray_logLevel sets the log level, 0 (TRACE) to 6 (FATAL). Returns
// 0 on success and 2 for an invalid level.
//
//export IntegerArray_logLevel
func IntegerArray_logLevel(level C.int) C.int {
	return C.int(setLogLevel(int(level)))
}
