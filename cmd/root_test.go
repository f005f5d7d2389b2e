////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gitlab.com/elixxir/integerarray/bindings"
)

// Tests that run prints the state of values followed by the count values and
// does not leave an IntegerArray behind.
func Test_run(t *testing.T) {
	tests := []struct {
		values   []int
		count    uint
		expected string
	}{
		{nil, 0, "[]\n"},
		{[]int{5, 3}, 0, "[5, 3]\n"},
		{[]int{-7, 0}, 0, "[-7, 0]\n"},
		{nil, 7, "[0, 1, 2, 3, 4, 5, 6]\n"},
		{[]int{9}, 2, "[9, 0, 1]\n"},
	}

	for i, tt := range tests {
		start := bindings.CountIntegerArrays()

		var out bytes.Buffer
		if err := run(&out, tt.values, tt.count, false); err != nil {
			t.Fatalf("run returned an error (%d): %+v", i, err)
		}

		if out.String() != tt.expected {
			t.Errorf("Unexpected output (%d).\nexpected: %q\nreceived: %q",
				i, tt.expected, out.String())
		}

		if bindings.CountIntegerArrays() != start {
			t.Errorf("IntegerArray not deleted (%d)", i)
		}
	}
}

// Tests that run prints a valid JSON report when requested.
func Test_run_Report(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, []int{1, 2}, 1, true); err != nil {
		t.Fatalf("run returned an error: %+v", err)
	}

	var report bindings.IntegerArrayReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("Failed to unmarshal %q: %+v", out.String(), err)
	}

	if report.State != "[1, 2, 0]" {
		t.Errorf("Unexpected state in report.\nexpected: %q\nreceived: %q",
			"[1, 2, 0]", report.State)
	}
	if len(report.Values) != 3 {
		t.Errorf("Unexpected number of values: %v", report.Values)
	}
}

// Tests that run rejects values that do not fit in 32 bits.
func Test_run_InvalidValue(t *testing.T) {
	big := int64(1) << 40
	if int64(int(big)) != big {
		t.Skip("int is 32 bits on this platform")
	}

	var out bytes.Buffer
	if err := run(&out, []int{int(big)}, 0, false); err == nil {
		t.Error("run did not return an error for an out of range value")
	}

	if out.Len() != 0 {
		t.Errorf("Unexpected output: %q", out.String())
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if !strings.HasPrefix(v, versionLine()) {
		t.Errorf("Version does not start with the version line."+
			"\nexpected: %q\nreceived: %q", versionLine(), v)
	}

	expected := "IntegerArray v" + bindings.GetVersion() + " -- "
	if !strings.HasPrefix(v, expected) {
		t.Errorf("Unexpected version line.\nexpected prefix: %q\nreceived: %q",
			expected, v)
	}
}
