// SPDX-License-Identifier: MIT

package formula

import "errors"

// Sentinel errors for formula operations. Callers branch with errors.Is;
// context (offending snippet, element, counts) is attached with %w wrapping.
var (
	// ErrSyntax indicates malformed formula text: an unparseable token,
	// an empty (or whitespace-only) input, or a negative explicit count.
	ErrSyntax = errors.New("formula: syntax error")

	// ErrNegativeComposition indicates an operation would produce a negative
	// element count (e.g., dehydrating more water than H/O can supply).
	ErrNegativeComposition = errors.New("formula: negative element count")

	// ErrInvalidArgument indicates an out-of-domain scalar argument
	// (negative scale factor, chain length below one, count overflow).
	ErrInvalidArgument = errors.New("formula: invalid argument")
)
