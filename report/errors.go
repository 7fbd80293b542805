// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrOutOfRange indicates a total unit count (or sweep range) outside
	// [MinTotalUnits, MaxTotalUnits].
	ErrOutOfRange = errors.New("report: total units out of range")

	// ErrInvalidOption indicates an option value outside its domain
	// (decimals outside [0, MaxDecimals] or a nil context).
	ErrInvalidOption = errors.New("report: invalid option")

	// ErrUnknownUnit indicates a unit label that is not one of the six categories.
	ErrUnknownUnit = errors.New("report: unknown unit category")

	// ErrNegativeCount indicates a negative unit count.
	ErrNegativeCount = errors.New("report: negative unit count")
)
