////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package intarray

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// Tests that RenderState produces the expected string for a set of known
// inputs.
func TestRenderState(t *testing.T) {
	tests := []struct {
		values   []int32
		expected string
	}{
		{nil, "[]"},
		{[]int32{}, "[]"},
		{[]int32{5}, "[5]"},
		{[]int32{5, 3}, "[5, 3]"},
		{[]int32{-7, 0}, "[-7, 0]"},
		{[]int32{1, 1, 1}, "[1, 1, 1]"},
		{[]int32{math.MinInt32, math.MaxInt32},
			"[-2147483648, 2147483647]"},
	}

	for i, tt := range tests {
		received := RenderState(tt.values)
		if received != tt.expected {
			t.Errorf("Unexpected state for %v (%d)."+
				"\nexpected: %q\nreceived: %q", tt.values, i, tt.expected, received)
		}
	}
}

// Tests that for random inputs RenderState contains exactly the values in
// order, separated by ", " with no other whitespace.
func TestRenderState_Random(t *testing.T) {
	prng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		values := make([]int32, prng.Intn(50))
		for j := range values {
			values[j] = int32(prng.Uint32())
		}

		state := RenderState(values)
		if !strings.HasPrefix(state, "[") || !strings.HasSuffix(state, "]") {
			t.Fatalf("State not enclosed in brackets: %q", state)
		}

		inner := strings.TrimSuffix(strings.TrimPrefix(state, "["), "]")
		if len(values) == 0 {
			if inner != "" {
				t.Errorf("Expected empty state, received %q", state)
			}
			continue
		}

		parts := strings.Split(inner, ", ")
		if len(parts) != len(values) {
			t.Fatalf("Wrong number of elements in %q."+
				"\nexpected: %d\nreceived: %d", state, len(values), len(parts))
		}

		for j, part := range parts {
			if strings.ContainsAny(part, " \t\n") {
				t.Errorf("Element %d of %q contains whitespace", j, state)
			}
			v, err := strconv.ParseInt(part, 10, 32)
			if err != nil {
				t.Fatalf("Failed to parse element %d of %q: %+v", j, state, err)
			}
			if int32(v) != values[j] {
				t.Errorf("Element %d does not match.\nexpected: %d\nreceived: %d",
					j, values[j], v)
			}
		}
	}
}
