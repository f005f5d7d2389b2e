////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package intarray

import (
	"strconv"
	"strings"
)

// Tokens of the rendered state.
const (
	stateOpen      = "["
	stateClose     = "]"
	stateSeparator = ", "
)

// RenderState renders the values as ASCII decimal integers separated by ", "
// and enclosed in square brackets. An empty or nil slice renders as "[]".
func RenderState(values []int32) string {
	var sb strings.Builder

	// Longest int32 is 11 characters ("-2147483648")
	sb.Grow(len(stateOpen) + len(stateClose) +
		len(values)*(11+len(stateSeparator)))

	sb.WriteString(stateOpen)
	for i, v := range values {
		if i > 0 {
			sb.WriteString(stateSeparator)
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	sb.WriteString(stateClose)

	return sb.String()
}
