// SPDX-License-Identifier: MIT

// Package app turns raw CLI values into a configured report.Builder and a
// process logger, so commands stay thin.
package app
