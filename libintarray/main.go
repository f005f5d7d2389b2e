////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Command libintarray builds the C shared library exposing IntegerArray:
//
//	go build -buildmode=c-shared -o libIntegerArray.so ./libintarray
//
// Arrays are addressed by non-zero uintptr_t handles that are looked up in a
// tracker on every call; they are never pointers into Go memory. Strings
// returned by IntegerArray_getState are allocated per call and must be
// released with IntegerArray_freeState.
package main

func main() {}
