// SPDX-License-Identifier: MIT

// Package sink serializes report rows to tabular formats.
//
// Every format registers a Factory under its name; callers pick one with New.
// A Sink writes the header when it is created, one line (or sheet row) per
// Write, and flushes everything on Close. Sinks never close the underlying
// io.Writer.
//
// Formats:
//
//	text   aligned columns for terminals
//	csv    RFC 4180
//	tsv    tab separated, one row per line
//	jsonl  one JSON object per row
//	xlsx   a single-sheet workbook, streamed row by row
package sink
