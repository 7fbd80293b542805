// SPDX-License-Identifier: MIT

// Package formula implements exact integer algebra over molecular formulas.
//
// 🚀 What is a Composition?
//
//	A Composition maps canonical element symbols ("C", "H", "Na") to
//	non-negative integer counts. Zero counts are never stored, so two
//	compositions are equal iff their non-zero entries match exactly.
//	Compositions are immutable: every operation returns a new value.
//
// ✨ Operations:
//   - ParseFormula(text)          — "C6H12O6" → {C:6, H:12, O:6}
//   - Scale(c, factor)            — multiply every count by factor ≥ 0
//   - Pool(cs...)                 — element-wise sum (identity = empty)
//   - Dehydrate(c, n)             — remove (n−1)·H2O from an n-unit chain
//   - AddModifier(c, text)        — add a parsed modifier formula once
//   - FormatHill(c)               — C first, H second, the rest alphabetically
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/glycoenum/formula"
//
//	hex, _ := formula.ParseFormula("C6H12O6")
//	chain, _ := formula.Scale(hex, 3)
//	chain, _ = formula.Dehydrate(chain, 3)
//	fmt.Println(formula.FormatHill(chain)) // C18H32O16
//
// Numeric semantics:
//
//	All arithmetic is exact integer arithmetic. Floating point appears only
//	in package mass.
//
// Errors:
//   - ErrSyntax               — malformed formula text (bad token, empty input, negative
//     or overflowing count).
//   - ErrNegativeComposition  — an operation would drive a count below zero.
//   - ErrInvalidArgument      — negative scale factor or source count, chain length < 1,
//     count overflow.
package formula
