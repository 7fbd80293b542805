// SPDX-License-Identifier: MIT

// Package report assembles sequence reports for oligosaccharide compositions.
//
// It glues the computational packages together:
//
//	formula  — pool, dehydrate and derivatize the unit formulas
//	mass     — neutral mass, adduct and m/z
//	permute  — every distinct linear arrangement of the units
//	compose  — every composition of a total over the six unit categories
//
// Single composition (Builder.Calculate):
//
//  1. Validate 2 ≤ Σcounts ≤ 10 (ErrOutOfRange otherwise).
//  2. Scale each category's reference formula by its count and pool them.
//  3. Dehydrate the pool by Σcounts (Σcounts−1 waters lost).
//  4. Add the terminal modifier C20H18N4O once.
//  5. Render base (step 3) and final (step 4) formulas in Hill notation.
//  6. Neutral mass of the final formula, then the configured adduct.
//  7. Count and lazily enumerate the permutations of the non-zero categories.
//
// Every SequenceReport of one Result shares the same formulas and masses; only
// the label order differs.
//
// Exhaustive mode (Builder.Sweep) repeats steps 2–7 for every composition of
// every total in the configured range (2..10 by default) and streams rows.
// The first failing composition aborts the sweep: a reference table with a
// silent hole is worse than no table.
//
// Nothing in this package performs I/O; sinks and files live with the caller.
package report
