// SPDX-License-Identifier: MIT

// Package commands defines the glycoenum CLI.
//
// Commands
//
//   - calc      Formulas, masses and every sequence of one composition
//   - count     Number of distinct sequences of a composition
//   - mass      Hill form and mass of an arbitrary formula
//   - summary   Exhaustive 2..10 unit table, chunked into files with a manifest
//   - verify    Check summary files against their manifest checksums
//
// Mass model, adduct, overrides, decimals and the m/z column are root flags
// shared by every command. Logs go to stderr; data goes to stdout or files.
// Any error exits with status 1; a closed stdout pipe ends output quietly.
package commands
