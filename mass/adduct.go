// SPDX-License-Identifier: MIT

package mass

import (
	"fmt"
	"strings"
)

// Adduct is an ionization mode applied to a neutral mass.
type Adduct string

const (
	// Neutral leaves the mass unchanged.
	Neutral Adduct = "neutral"
	// Protonated adds one hydrogen: [M+H]+.
	Protonated Adduct = "[M+H]+"
	// Sodiated adds one sodium: [M+Na]+.
	Sodiated Adduct = "[M+Na]+"
)

// adductSpecies maps each adduct to the element whose mass it adds.
var adductSpecies = map[Adduct]string{
	Neutral:    "",
	Protonated: "H",
	Sodiated:   "Na",
}

// ParseAdduct recognizes adduct text case-insensitively, ignoring
// surrounding whitespace. Empty text means Neutral.
//
// Errors: ErrUnsupportedAdduct for anything else.
func ParseAdduct(text string) (Adduct, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	switch key {
	case "", "neutral":
		return Neutral, nil
	case "[m+h]+":
		return Protonated, nil
	case "[m+na]+":
		return Sodiated, nil
	}

	return "", fmt.Errorf("%w %q (supported: %s, %s, %s)", ErrUnsupportedAdduct, text, Neutral, Protonated, Sodiated)
}

// Species returns the element added by a, or "" for Neutral.
func (a Adduct) Species() string { return adductSpecies[a] }

// ApplyAdduct parses adduct and adds the mass of its species to neutral.
//
// Errors: ErrUnsupportedAdduct; *MissingMassError (ErrMissingElementMass)
// when the table lacks H or Na as required.
func (t *Table) ApplyAdduct(neutral float64, adduct string) (float64, error) {
	a, err := ParseAdduct(adduct)
	if err != nil {
		return 0, err
	}

	return t.Ionize(neutral, a)
}

// Ionize is ApplyAdduct for an already parsed Adduct.
func (t *Table) Ionize(neutral float64, a Adduct) (float64, error) {
	species, ok := adductSpecies[a]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnsupportedAdduct, string(a))
	}
	if species == "" {
		return neutral, nil
	}

	v, err := t.require(species, string(a)+" adduct")
	if err != nil {
		return 0, err
	}

	return neutral + v, nil
}
