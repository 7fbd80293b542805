// SPDX-License-Identifier: MIT

// Package mass turns element compositions into theoretical masses.
//
// A Table maps canonical element symbols to atomic masses for one mass model
// ("monoisotopic" or "average"), optionally patched with per-element
// overrides. Tables are built once per calculation and are immutable.
//
// Operations:
//   - BuildTable(model, overrides) — built-in constants + overrides
//   - (*Table).Calculate(c)        — Σ count × mass over c's elements
//   - ParseAdduct(text)            — "neutral" | "[M+H]+" | "[M+Na]+"
//   - (*Table).ApplyAdduct(m, a)   — add the ionizing species' mass
//
// Summation runs over elements in lexical order so the same composition
// always produces the bit-identical float64.
//
// Errors:
//   - ErrUnknownModel        — model name is not one of the built-ins.
//   - ErrMissingElementMass  — an element has no entry (as *MissingMassError).
//   - ErrUnsupportedAdduct   — adduct text is not recognized.
//   - ErrInvalidMass         — an override is NaN, ±Inf or not positive.
package mass
