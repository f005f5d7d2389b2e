////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

/*
#include <stdint.h>
*/
import "C"

// cState holds a string returned by IntegerArray_getState so that Go code,
// which cannot name C types in tests, can inspect and free it.
type cState struct {
	p *C.char
}

// getCState calls IntegerArray_getState across the C ABI.
func getCState(handle uintptr) cState {
	return cState{p: IntegerArray_getState(C.uintptr_t(handle))}
}

func (s cState) isNull() bool {
	return s.p == nil
}

// goString copies the C string into Go memory. A null state copies to "".
func (s cState) goString() string {
	if s.p == nil {
		return ""
	}
	return C.GoString(s.p)
}

// free passes the string to IntegerArray_freeState.
func (s cState) free() {
	IntegerArray_freeState(s.p)
}

// The following call the remaining entry points with Go types.

func cNew() uintptr {
	return uintptr(IntegerArray_new())
}

func cAdd(handle uintptr, value int32) int {
	return int(IntegerArray_add(C.uintptr_t(handle), C.int(value)))
}

func cLen(handle uintptr) int {
	return int(IntegerArray_len(C.uintptr_t(handle)))
}

func cDelete(handle uintptr) int {
	return int(IntegerArray_delete(C.uintptr_t(handle)))
}

func cCount() int {
	return int(IntegerArray_count())
}

func cOutstandingStates() int64 {
	return int64(IntegerArray_outstandingStates())
}
