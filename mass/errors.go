// SPDX-License-Identifier: MIT

package mass

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModel indicates a mass model name outside the built-in set.
	ErrUnknownModel = errors.New("mass: unknown mass model")

	// ErrMissingElementMass indicates the table has no mass for an element.
	// Concrete errors are *MissingMassError values; match with errors.Is.
	ErrMissingElementMass = errors.New("mass: missing element mass")

	// ErrUnsupportedAdduct indicates adduct text outside the supported set.
	ErrUnsupportedAdduct = errors.New("mass: unsupported adduct")

	// ErrInvalidMass indicates an override value that is not a finite
	// positive number.
	ErrInvalidMass = errors.New("mass: invalid element mass")
)

// MissingMassError names the element that has no entry in a Table.
type MissingMassError struct {
	Element string
	Model   Model
	// Need describes why the mass was required ("" for plain composition sums).
	Need string
}

func (e *MissingMassError) Error() string {
	if e.Need != "" {
		return fmt.Sprintf("mass: %s table has no mass for %q (required for %s)", e.Model, e.Element, e.Need)
	}

	return fmt.Sprintf("mass: %s table has no mass for %q", e.Model, e.Element)
}

// Is makes errors.Is(err, ErrMissingElementMass) hold.
func (e *MissingMassError) Is(target error) bool { return target == ErrMissingElementMass }
