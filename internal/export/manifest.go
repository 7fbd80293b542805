// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/glycoenum/internal/sink"
	"github.com/katalvlaran/glycoenum/report"
)

// File names.
const (
	SummaryBasename   = "Oligosaccharide_prediction_summary"
	ManifestName      = SummaryBasename + "_manifest.json"
	DefaultOutputName = "Oligosaccharide_prediction_output.xlsx"
)

// RowsPerWorkbook is the default chunk size: one full worksheet under its header.
const RowsPerWorkbook = uint64(sink.MaxXLSXRows)

var (
	// ErrEmptySweep is returned when a summary run produced no rows.
	ErrEmptySweep = errors.New("export: no summary data was generated")

	// ErrNoManifest is returned by Verify when the directory has no manifest.
	ErrNoManifest = errors.New("export: manifest not found")

	// ErrChecksumMismatch is returned by Verify when a chunk is missing or altered.
	ErrChecksumMismatch = errors.New("export: chunk checksum mismatch")

	// ErrIncomplete is returned by Verify for a manifest of an interrupted run.
	ErrIncomplete = errors.New("export: summary is incomplete")

	// ErrInvalidManifest is returned for a manifest naming files outside the
	// summary set of its directory.
	ErrInvalidManifest = errors.New("export: invalid manifest")

	// ErrInvalidConfig indicates an unusable export configuration.
	ErrInvalidConfig = errors.New("export: invalid configuration")
)

// Chunk describes one written summary file.
type Chunk struct {
	Name    string `json:"name"`
	Rows    uint64 `json:"rows"`
	BLAKE2b string `json:"blake2b_256"`
}

// Manifest records a summary run. Files and Chunks list the same files in
// order; Files keeps the plain name list for simple consumers.
type Manifest struct {
	Files           []string `json:"files"`
	Chunks          []Chunk  `json:"chunks"`
	TotalRows       uint64   `json:"total_rows"`
	RowsPerWorkbook uint64   `json:"rows_per_workbook"`
	UnitRange       [2]int   `json:"unit_range"`
	MassModel       string   `json:"mass_model"`
	Adduct          string   `json:"adduct"`
	Decimals        int      `json:"decimals"`
	IncludeMZ       bool     `json:"include_mz"`
	RowCap          uint64   `json:"row_cap,omitempty"`
	Format          string   `json:"format"`
	Complete        bool     `json:"complete"`
}

// newManifest captures the run parameters of b and cfg; no chunks yet.
func newManifest(b *report.Builder, format string, rowsPerFile uint64) *Manifest {
	o := b.Options()
	return &Manifest{
		Files:           []string{},
		Chunks:          []Chunk{},
		RowsPerWorkbook: rowsPerFile,
		UnitRange:       [2]int{o.MinTotal, o.MaxTotal},
		MassModel:       string(b.Table().Model()),
		Adduct:          string(b.Adduct()),
		Decimals:        o.Decimals,
		IncludeMZ:       o.IncludeMZ,
		RowCap:          o.RowCap,
		Format:          format,
	}
}

// sameRun reports whether m and other describe the same row stream and layout.
// Overrides are not recorded, so a resumed run must reuse them.
func (m *Manifest) sameRun(other *Manifest) bool {
	return m.RowsPerWorkbook == other.RowsPerWorkbook &&
		m.UnitRange == other.UnitRange &&
		m.MassModel == other.MassModel &&
		m.Adduct == other.Adduct &&
		m.Decimals == other.Decimals &&
		m.IncludeMZ == other.IncludeMZ &&
		m.RowCap == other.RowCap &&
		m.Format == other.Format
}

func (m *Manifest) add(c Chunk) {
	m.Chunks = append(m.Chunks, c)
	m.Files = append(m.Files, c.Name)
	m.TotalRows += c.Rows
}

// ReadManifest loads the manifest in dir.
//
// Errors: ErrNoManifest when absent; JSON errors when unreadable.
func ReadManifest(dir string) (*Manifest, error) {
	var m Manifest
	ok, err := readJSON(filepath.Join(dir, ManifestName), &m)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w in %s", ErrNoManifest, dir)
	}
	for _, name := range m.Files {
		if err := checkChunkName(name); err != nil {
			return nil, err
		}
	}
	for _, c := range m.Chunks {
		if err := checkChunkName(c.Name); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// checkChunkName accepts only plain summary file names, so a manifest can
// never reach outside its own directory.
func checkChunkName(name string) error {
	if filepath.Base(name) != name || !strings.HasPrefix(name, SummaryBasename) || name == ManifestName {
		return fmt.Errorf("%w: chunk name %q", ErrInvalidManifest, name)
	}
	return nil
}

func writeManifest(dir string, m *Manifest) error {
	return writeJSON(filepath.Join(dir, ManifestName), m)
}

// ChunkName returns the file name of the index-th chunk (1-based).
func ChunkName(index int, ext string) string {
	if index <= 1 {
		return SummaryBasename + "." + ext
	}
	return fmt.Sprintf("%s_part%d.%s", SummaryBasename, index, ext)
}
