// SPDX-License-Identifier: MIT

// Package glycoenum enumerates oligosaccharide sequences and reports their
// molecular formulas and masses, from a single composition up to the full
// 2..10 unit reference table.
//
// 🚀 What is glycoenum?
//
//	A small, deterministic library plus CLI that brings together:
//		• Formula algebra: parse, scale, pool, dehydrate, Hill notation
//		• Mass tables: monoisotopic / average models, overrides, adducts, m/z
//		• Permutations: every distinct arrangement of a multiset, lazily
//		• Compositions: every split of a total over the six unit categories
//		• Reports: formulas, masses and sequences per composition, or a full sweep
//		• Export: text, CSV, TSV, JSONL and XLSX, chunked with a checksummed manifest
//
// ✨ Why glycoenum?
//
//   - Exact arithmetic – integer formulas, overflow-checked counts
//   - Deterministic – identical input, identical rows in identical order
//   - Streaming – 72 million sweep rows without holding them in memory
//   - Silent core – the computational packages never log or touch files
//
// Packages:
//
//	formula/           — element compositions and the formula algebra
//	mass/              — mass models, overrides and adducts
//	permute/           — multiset permutation counting and enumeration
//	compose/           — weak compositions of a total
//	report/            — the sequence report builder and the sweep
//	internal/sink/     — row serializers
//	internal/export/   — single-file export, chunked summary, verify
//	cmd/glycoenum/     — the command line
//
// Quick example (Hex:3 + deoxyhex:1):
//
//	base   C24H42O20    (3 waters lost)
//	final  C44H60N4O21  (+ C20H18N4O tag)
//	mass   980.3750     m/z 981.3828
//	Hex-Hex-Hex-deoxyhex, Hex-Hex-deoxyhex-Hex, Hex-deoxyhex-Hex-Hex, deoxyhex-Hex-Hex-Hex
//
//	go install github.com/katalvlaran/glycoenum/cmd/glycoenum@latest
package glycoenum
