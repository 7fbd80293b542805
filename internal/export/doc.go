// SPDX-License-Identifier: MIT

// Package export writes report rows to files.
//
// Single mode writes one Result to one file (or stream) in any sink format.
//
// Summary mode streams Builder.Sweep into numbered chunk files of at most
// RowsPerFile rows each:
//
//	Oligosaccharide_prediction_summary.xlsx
//	Oligosaccharide_prediction_summary_part2.xlsx
//	...
//	Oligosaccharide_prediction_summary_manifest.json
//
// Chunks are written under a temporary name and renamed once closed; the
// manifest is rewritten atomically after every chunk with each file's row
// count and BLAKE2b-256 checksum, and marked complete at the end. Because the
// sweep order is deterministic, an interrupted run can resume: verified
// chunks are kept, their rows skipped, and writing continues with the next
// chunk.
package export
