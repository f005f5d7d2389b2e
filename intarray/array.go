////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package intarray contains a growable, append-only sequence of 32-bit
// integers and its textual rendering.
package intarray

import (
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// Error messages.
var (
	// ErrReleased is returned by any operation on an Array after Release has
	// been called on it.
	ErrReleased = errors.New("integer array has been released")

	// ErrIndexOutOfRange is returned by Get when the index is not in
	// [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// releasedState is what String returns for a released Array.
const releasedState = "[released]"

// Array is an ordered sequence of int32 values. Values are kept in insertion
// order, duplicates are allowed, and nothing is ever removed. The zero value
// is an empty, usable Array.
type Array struct {
	values   []int32
	released bool
	mux      sync.RWMutex
}

// New returns a new empty Array.
func New() *Array {
	return &Array{values: make([]int32, 0)}
}

// Add appends the value to the end of the array.
func (a *Array) Add(value int32) error {
	a.mux.Lock()
	defer a.mux.Unlock()

	if a.released {
		return ErrReleased
	}

	a.values = append(a.values, value)
	jww.TRACE.Printf("[INTARRAY] Added %d at position %d", value,
		len(a.values)-1)
	return nil
}

// Len returns the number of values in the array. A released array has a
// length of zero.
func (a *Array) Len() int {
	a.mux.RLock()
	defer a.mux.RUnlock()
	return len(a.values)
}

// Get returns the value at index i.
func (a *Array) Get(i int) (int32, error) {
	a.mux.RLock()
	defer a.mux.RUnlock()

	if a.released {
		return 0, ErrReleased
	}

	if i < 0 || i >= len(a.values) {
		return 0, errors.Wrapf(ErrIndexOutOfRange,
			"cannot get index %d of array with length %d", i, len(a.values))
	}

	return a.values[i], nil
}

// Values returns a copy of the contents of the array. Modifying the returned
// slice does not modify the array.
func (a *Array) Values() ([]int32, error) {
	a.mux.RLock()
	defer a.mux.RUnlock()

	if a.released {
		return nil, ErrReleased
	}

	values := make([]int32, len(a.values))
	copy(values, a.values)
	return values, nil
}

// GetState renders the current contents of the array in the form
// "[v0, v1, ..., vn]". Each call builds a new string from the current
// contents; the result is not shared with any other call or Array.
func (a *Array) GetState() (string, error) {
	a.mux.RLock()
	defer a.mux.RUnlock()

	if a.released {
		return "", ErrReleased
	}

	return RenderState(a.values), nil
}

// String returns the rendered state of the array. Adheres to the fmt.Stringer
// interface.
func (a *Array) String() string {
	state, err := a.GetState()
	if err != nil {
		return releasedState
	}
	return state
}

// Release drops the backing storage of the array. All later calls to Add,
// Get, Values and GetState return ErrReleased. Calling Release more than once
// has no further effect.
func (a *Array) Release() {
	a.mux.Lock()
	defer a.mux.Unlock()

	if a.released {
		return
	}

	jww.DEBUG.Printf("[INTARRAY] Releasing array with %d values",
		len(a.values))
	a.values = nil
	a.released = true
}

// IsReleased returns true if Release has been called.
func (a *Array) IsReleased() bool {
	a.mux.RLock()
	defer a.mux.RUnlock()
	return a.released
}
