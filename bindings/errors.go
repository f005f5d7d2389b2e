////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package bindings

import (
	"strings"
)

// errToUserErr maps backend patterns to user friendly error messages.
// Example format:
// (Back-end) "Cannot get IntegerArray for ID":  (Front-end) "Array does not exist",
var errToUserErr = map[string]string{
	"Cannot get IntegerArray for ID":    "Array does not exist",
	"Cannot delete IntegerArray for ID": "Array was already deleted",
	"Cannot use deleted IntegerArray":   "Array was deleted",
	"cannot add":                        "Value is too large",
}

// Error codes
const UnrecognizedCode = "UR: "
const UnrecognizedMessage = UnrecognizedCode + "Unrecognized error from backend, please report"

// ErrorStringToUserFriendlyMessage takes a passed in errStr which will be
// a backend generated error. This function will parse the error string for
// common errors provided from errToUserErr to provide a more user-friendly
// error message for the front end. If the error is not common, the highest
// level message of a compound error is returned, removing backend specific
// jargon.
func ErrorStringToUserFriendlyMessage(errStr string) string {
	// Go through common errors
	for backendErr, userFriendly := range errToUserErr {
		// Determine if error contains a common error
		if strings.HasPrefix(errStr, backendErr) {
			return userFriendly
		}
	}

	// If a compound error message, return the highest level message
	errParts := strings.Split(errStr, ":")
	if len(errParts) > 1 {
		// Return everything before the first :
		return UnrecognizedCode + errParts[0]
	}

	return UnrecognizedMessage
}
