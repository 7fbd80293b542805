// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/glycoenum/internal/sink"
	"github.com/katalvlaran/glycoenum/report"
)

// SummaryConfig controls a summary run.
type SummaryConfig struct {
	// Dir receives the chunk files and the manifest; created if missing.
	Dir string

	// Format is a sink format name; empty means xlsx.
	Format string

	// RowsPerFile bounds the data rows per chunk; 0 means RowsPerWorkbook.
	// xlsx chunks cannot exceed RowsPerWorkbook.
	RowsPerFile uint64

	// Resume continues an interrupted run with identical parameters instead
	// of starting over.
	Resume bool

	// Logger receives progress; nil discards it.
	Logger *slog.Logger
}

func (c *SummaryConfig) normalize() error {
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	if c.Format == "" {
		c.Format = "xlsx"
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if sink.Extension(c.Format) == "" {
		return fmt.Errorf("%w %q", sink.ErrUnknownFormat, c.Format)
	}
	if c.RowsPerFile == 0 {
		c.RowsPerFile = RowsPerWorkbook
	}
	if c.Format == "xlsx" && c.RowsPerFile > RowsPerWorkbook {
		return fmt.Errorf("%w: %d rows per xlsx file exceeds %d", ErrInvalidConfig, c.RowsPerFile, RowsPerWorkbook)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// Summary streams b.Sweep() into chunk files under cfg.Dir and returns the
// final manifest.
//
// A fresh run first removes every file of the summary basename in Dir. With
// Resume, an incomplete manifest of the same parameters keeps its leading
// chunks that still match their checksums; anything after them is removed
// and regenerated. A complete matching manifest is returned as is.
//
// Errors: ErrInvalidConfig, sink.ErrUnknownFormat, ErrEmptySweep, sweep
// errors, and I/O errors. On error the manifest on disk describes the chunks
// finished so far with Complete=false.
func Summary(b *report.Builder, cfg SummaryConfig) (*Manifest, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	log := cfg.Logger.With("dir", cfg.Dir, "format", cfg.Format)
	ext := sink.Extension(cfg.Format)

	m := newManifest(b, cfg.Format, cfg.RowsPerFile)
	if cfg.Resume {
		prev, err := resumable(cfg.Dir, m, log)
		if err != nil {
			return nil, err
		}
		if prev != nil && prev.Complete {
			log.Info("summary already complete", "files", len(prev.Files), "rows", prev.TotalRows)
			return prev, nil
		}
		if prev != nil {
			m = prev
		}
	}
	if err := removeStale(cfg.Dir, m.Files); err != nil {
		return nil, err
	}

	next, stop := iter.Pull2(b.Sweep())
	defer stop()

	for skipped := uint64(0); skipped < m.TotalRows; skipped++ {
		_, err, ok := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: sweep ended after %d of %d resumed rows", ErrInvalidConfig, skipped, m.TotalRows)
		}
	}
	if m.TotalRows > 0 {
		log.Info("resuming summary", "kept_files", len(m.Files), "skipped_rows", m.TotalRows)
	}

	for index := len(m.Chunks) + 1; ; index++ {
		first, err, ok := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		name := ChunkName(index, ext)
		chunk, err := writeChunk(filepath.Join(cfg.Dir, name), first, next, cfg, m.IncludeMZ)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		chunk.Name = name
		m.add(chunk)
		if err := writeManifest(cfg.Dir, m); err != nil {
			return nil, err
		}
		log.Info("summary chunk written", "file", name, "rows", chunk.Rows, "total_rows", m.TotalRows)
	}

	if len(m.Chunks) == 0 {
		return nil, ErrEmptySweep
	}
	m.Complete = true
	if err := writeManifest(cfg.Dir, m); err != nil {
		return nil, err
	}
	log.Info("summary complete", "files", len(m.Files), "rows", m.TotalRows)

	return m, nil
}

// writeChunk writes first plus up to RowsPerFile-1 further rows pulled from
// next into path, hashing the bytes on the way.
func writeChunk(path string, first report.Row, next func() (report.Row, error, bool), cfg SummaryConfig, includeMZ bool) (Chunk, error) {
	var c Chunk
	err := atomicWrite(path, func(w io.Writer) error {
		cw := newChecksumWriter(w)
		s, err := sink.New(cfg.Format, cw, sink.Options{IncludeMZ: includeMZ, Sheet: sink.DefaultSheet})
		if err != nil {
			return err
		}
		if err := s.Write(first); err != nil {
			return err
		}
		c.Rows = 1
		for c.Rows < cfg.RowsPerFile {
			row, err, ok := next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if err := s.Write(row); err != nil {
				return err
			}
			c.Rows++
		}
		if err := s.Close(); err != nil {
			return err
		}
		c.BLAKE2b = cw.Sum()
		return nil
	})

	return c, err
}

// resumable returns the manifest in dir trimmed to its verified leading
// chunks, or nil when a fresh run is needed.
func resumable(dir string, want *Manifest, log *slog.Logger) (*Manifest, error) {
	prev, err := ReadManifest(dir)
	if errors.Is(err, ErrNoManifest) {
		log.Info("no manifest to resume; starting fresh")
		return nil, nil
	}
	if errors.Is(err, ErrInvalidManifest) {
		log.Warn("manifest rejected; starting fresh", "err", err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !prev.sameRun(want) {
		log.Warn("manifest parameters differ; starting fresh")
		return nil, nil
	}

	kept := *want
	kept.Files, kept.Chunks, kept.TotalRows = []string{}, []Chunk{}, 0
	for _, c := range prev.Chunks {
		sum, err := fileChecksum(filepath.Join(dir, c.Name))
		if err != nil || sum != c.BLAKE2b {
			log.Warn("chunk failed verification; regenerating from here", "file", c.Name)
			return &kept, nil
		}
		kept.add(c)
	}
	kept.Complete = prev.Complete

	return &kept, nil
}

// removeStale deletes summary files and leftovers in dir that are not in keep.
// The manifest goes too unless chunks are kept.
func removeStale(dir string, keep []string) error {
	keepSet := make(map[string]bool, len(keep)+1)
	for _, name := range keep {
		keepSet[name] = true
	}
	if len(keep) > 0 {
		keepSet[ManifestName] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, SummaryBasename) || keepSet[name] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
