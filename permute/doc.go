// SPDX-License-Identifier: MIT

// Package permute counts and enumerates the distinct permutations of a
// multiset of labels.
//
// 🚀 What is a multiset permutation?
//
//	Given {Hex:2, dHex:1}, swapping the two Hex units produces the same
//	arrangement, so there are 3!/(2!·1!) = 3 distinct sequences:
//	  Hex Hex dHex · Hex dHex Hex · dHex Hex Hex
//
// ✨ Key features:
//   - Count: exact multinomial coefficient in uint64; fails loudly with
//     ErrOverflow instead of wrapping (CountBig has no upper bound).
//   - Enumerator: pull-style DFS backtracking over a private arena of
//     per-depth cursors; each distinct sequence is produced exactly once,
//     in lexicographic order of the labels (byte-wise string order).
//   - Enumerate: a restartable iter.Seq wrapper; every range loop starts a
//     fresh Enumerator, and breaking out of the loop stops the work.
//
// Empty or all-zero multisets have no permutations (not one empty
// permutation): Count returns 0 and the enumeration yields nothing.
//
// Complexity:
//
//   - Count:     O(k·n) for k labels and n total items.
//   - Next:      amortized O(k) per sequence plus O(n) for the returned copy.
//   - Memory:    O(n + k) per Enumerator, regardless of how many sequences exist.
//
// Errors:
//   - ErrInvalidCount — a negative repetition count or an empty label.
//   - ErrOverflow     — the permutation count exceeds uint64.
package permute
