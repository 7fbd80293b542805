// SPDX-License-Identifier: MIT

package export

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"hash"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

const fileMode os.FileMode = 0o644

// readJSON reads path into out; a missing file yields (false, nil).
func readJSON(path string, out any) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, out)
}

// writeJSON writes indented JSON via a temp file then rename.
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(path, func(w io.Writer) error {
		_, err := w.Write(append(b, '\n'))
		return err
	})
}

// atomicWrite streams fill into a temp file next to path and renames it over
// path once fill and Close succeed. On failure path is left untouched.
func atomicWrite(path string, fill func(w io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := fill(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(fileMode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// checksumWriter hashes everything written through it.
type checksumWriter struct {
	w io.Writer
	h hash.Hash
}

func newChecksumWriter(w io.Writer) *checksumWriter {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	return &checksumWriter{w: w, h: h}
}

func (c *checksumWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.h.Write(p[:n])
	return n, err
}

func (c *checksumWriter) Sum() string { return hex.EncodeToString(c.h.Sum(nil)) }

// fileChecksum returns the hex BLAKE2b-256 digest of the file at path.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, _ := blake2b.New256(nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
