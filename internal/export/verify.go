// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Problem is one chunk that failed verification.
type Problem struct {
	File   string
	Reason string
}

// VerifyReport summarizes a Verify run.
type VerifyReport struct {
	Manifest *Manifest
	Checked  int
	Problems []Problem
}

// Verify recomputes the checksum of every chunk listed in dir's manifest.
// The report is returned even when err != nil, except for ErrNoManifest
// and unreadable manifests.
//
// Errors: ErrNoManifest; ErrInvalidManifest; ErrChecksumMismatch when any chunk is missing or
// altered; ErrIncomplete when all chunks match but the run never finished.
func Verify(dir string) (*VerifyReport, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}

	rep := &VerifyReport{Manifest: m}
	for _, c := range m.Chunks {
		rep.Checked++
		sum, err := fileChecksum(filepath.Join(dir, c.Name))
		switch {
		case errors.Is(err, os.ErrNotExist):
			rep.Problems = append(rep.Problems, Problem{File: c.Name, Reason: "missing"})
		case err != nil:
			rep.Problems = append(rep.Problems, Problem{File: c.Name, Reason: err.Error()})
		case sum != c.BLAKE2b:
			rep.Problems = append(rep.Problems, Problem{File: c.Name, Reason: "checksum mismatch"})
		}
	}

	if len(rep.Problems) > 0 {
		names := make([]string, len(rep.Problems))
		for i, p := range rep.Problems {
			names[i] = p.File
		}
		return rep, fmt.Errorf("%w: %s", ErrChecksumMismatch, strings.Join(names, ", "))
	}
	if !m.Complete {
		return rep, fmt.Errorf("%w: %d file(s) written", ErrIncomplete, len(m.Chunks))
	}
	return rep, nil
}
