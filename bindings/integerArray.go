////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package bindings

import (
	"encoding/json"
	"math"
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/integerarray/intarray"
)

// Error messages.
var (
	// ErrInvalidHandle is the cause of every error returned for an ID that
	// was never issued, has been deleted, or is zero.
	ErrInvalidHandle = errors.New("invalid integer array handle")

	// ErrValueOutOfRange is returned when a value does not fit in 32 bits.
	ErrValueOutOfRange = errors.New("value does not fit in a 32-bit integer")
)

////////////////////////////////////////////////////////////////////////////////
// Singleton Tracker                                                          //
////////////////////////////////////////////////////////////////////////////////

// integerArrayTrackerSingleton is used to track IntegerArray objects so that
// they can be referenced by ID back over the bindings.
var integerArrayTrackerSingleton = newIntegerArrayTracker()

// integerArrayTracker is a singleton used to keep track of extant IntegerArray
// objects, preventing race conditions created by passing it over the bindings.
type integerArrayTracker struct {
	tracked map[int]*IntegerArray
	count   int
	mux     sync.RWMutex
}

// newIntegerArrayTracker returns an empty tracker. IDs start at 1 so that an
// ID of 0 always corresponds to a null handle.
func newIntegerArrayTracker() *integerArrayTracker {
	return &integerArrayTracker{
		tracked: make(map[int]*IntegerArray),
		count:   1,
	}
}

// make creates an IntegerArray wrapping a new intarray.Array, assigns it a
// unique ID, and adds it to the integerArrayTracker.
func (iat *integerArrayTracker) make() *IntegerArray {
	iat.mux.Lock()
	defer iat.mux.Unlock()

	id := iat.count
	iat.count++

	iat.tracked[id] = &IntegerArray{
		api: intarray.New(),
		id:  id,
	}

	return iat.tracked[id]
}

// get returns an IntegerArray from the integerArrayTracker given its ID.
func (iat *integerArrayTracker) get(id int) (*IntegerArray, error) {
	iat.mux.RLock()
	defer iat.mux.RUnlock()

	ia, exist := iat.tracked[id]
	if !exist {
		return nil, errors.Wrapf(ErrInvalidHandle,
			"Cannot get IntegerArray for ID %d, does not exist", id)
	}

	return ia, nil
}

// delete removes an IntegerArray from the integerArrayTracker and returns it.
func (iat *integerArrayTracker) delete(id int) (*IntegerArray, error) {
	iat.mux.Lock()
	defer iat.mux.Unlock()

	ia, exist := iat.tracked[id]
	if !exist {
		return nil, errors.Wrapf(ErrInvalidHandle,
			"Cannot delete IntegerArray for ID %d, does not exist", id)
	}
	delete(iat.tracked, id)

	return ia, nil
}

// len returns the number of tracked IntegerArray objects.
func (iat *integerArrayTracker) len() int {
	iat.mux.RLock()
	defer iat.mux.RUnlock()
	return len(iat.tracked)
}

////////////////////////////////////////////////////////////////////////////////
// IntegerArray                                                               //
////////////////////////////////////////////////////////////////////////////////

// IntegerArray wraps the intarray.Array, implementing additional functions to
// support the bindings IntegerArray interface.
type IntegerArray struct {
	api *intarray.Array
	id  int
}

// IntegerArrayReport is the JSON representation of an IntegerArray returned
// by IntegerArray.GetReport.
//
// Example JSON:
//
//	{
//	  "ID": 1,
//	  "Values": [5, 3],
//	  "State": "[5, 3]"
//	}
type IntegerArrayReport struct {
	ID     int
	Values []int32
	State  string
}

// NewIntegerArray creates a new empty IntegerArray and adds it to the tracker.
// The returned object must be deleted with DeleteIntegerArray when it is no
// longer needed.
func NewIntegerArray() *IntegerArray {
	ia := integerArrayTrackerSingleton.make()
	jww.DEBUG.Printf("[BINDINGS] Created IntegerArray %d", ia.id)
	return ia
}

// GetIntegerArray returns the tracked IntegerArray with the given ID.
func GetIntegerArray(id int) (*IntegerArray, error) {
	return integerArrayTrackerSingleton.get(id)
}

// AddToIntegerArray appends the value to the IntegerArray with the given ID.
func AddToIntegerArray(id, value int) error {
	ia, err := integerArrayTrackerSingleton.get(id)
	if err != nil {
		return err
	}
	return ia.Add(value)
}

// GetIntegerArrayState renders the IntegerArray with the given ID. See
// IntegerArray.GetState.
func GetIntegerArrayState(id int) (string, error) {
	ia, err := integerArrayTrackerSingleton.get(id)
	if err != nil {
		return "", err
	}
	return ia.GetState()
}

// DeleteIntegerArray removes the IntegerArray with the given ID from the
// tracker and releases its contents. Any further use of the ID, including a
// second delete, returns an error whose cause is ErrInvalidHandle.
func DeleteIntegerArray(id int) error {
	ia, err := integerArrayTrackerSingleton.delete(id)
	if err != nil {
		return err
	}

	ia.api.Release()
	jww.DEBUG.Printf("[BINDINGS] Deleted IntegerArray %d", id)
	return nil
}

// CountIntegerArrays returns the number of IntegerArray objects that have been
// created and not yet deleted.
func CountIntegerArrays() int {
	return integerArrayTrackerSingleton.len()
}

// GetID returns the ID for this IntegerArray in the tracker.
func (ia *IntegerArray) GetID() int {
	return ia.id
}

// Add appends the value to the end of the array.
//
// Parameters:
//   - value - Must fit in a signed 32-bit integer.
func (ia *IntegerArray) Add(value int) error {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return errors.Wrapf(ErrValueOutOfRange, "cannot add %d", value)
	}

	if err := ia.api.Add(int32(value)); err != nil {
		return ia.invalid(err)
	}
	return nil
}

// Len returns the number of values in the array.
func (ia *IntegerArray) Len() int {
	return ia.api.Len()
}

// GetState returns the contents of the array in the form "[v0, v1, ..., vn]".
// Every call returns a new string built from the current contents.
func (ia *IntegerArray) GetState() (string, error) {
	state, err := ia.api.GetState()
	if err != nil {
		return "", ia.invalid(err)
	}
	return state, nil
}

// GetReport returns the JSON of an IntegerArrayReport describing the array.
func (ia *IntegerArray) GetReport() ([]byte, error) {
	values, err := ia.api.Values()
	if err != nil {
		return nil, ia.invalid(err)
	}

	report := IntegerArrayReport{
		ID:     ia.id,
		Values: values,
		State:  intarray.RenderState(values),
	}

	return json.Marshal(report)
}

// invalid converts an error from a released intarray.Array into an invalid
// handle error.
func (ia *IntegerArray) invalid(err error) error {
	if errors.Is(err, intarray.ErrReleased) {
		return errors.Wrapf(ErrInvalidHandle,
			"Cannot use deleted IntegerArray %d", ia.id)
	}
	return err
}
