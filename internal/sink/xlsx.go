// SPDX-License-Identifier: MIT

package sink

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/glycoenum/report"
)

func init() {
	Register("xlsx", "xlsx", newXLSX)
}

// MaxXLSXRows is the number of data rows one worksheet holds under its header.
const MaxXLSXRows = excelize.TotalRows - 1

// xlsxSink streams rows into a single worksheet and serializes the workbook
// to the writer on Close.
type xlsxSink struct {
	w         io.Writer
	file      *excelize.File
	sw        *excelize.StreamWriter
	includeMZ bool
	row       int // last written sheet row, 1-based
	closed    bool
}

func newXLSX(w io.Writer, opts Options) (Sink, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("xlsx sheet %q: %w", sheet, err)
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	x := &xlsxSink{w: w, file: f, sw: sw, includeMZ: opts.IncludeMZ}
	if err := x.put(report.Header(opts.IncludeMZ)); err != nil {
		_ = f.Close()
		return nil, err
	}
	return x, nil
}

func (x *xlsxSink) put(cells []string) error {
	if x.row >= excelize.TotalRows {
		return fmt.Errorf("%w: worksheet holds %d rows", ErrRowLimit, excelize.TotalRows)
	}
	x.row++
	axis, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return x.sw.SetRow(axis, values)
}

func (x *xlsxSink) Write(row report.Row) error {
	if x.closed {
		return ErrClosed
	}
	return x.put(row.Values(x.includeMZ))
}

func (x *xlsxSink) Close() error {
	if x.closed {
		return nil
	}
	x.closed = true
	defer x.file.Close()

	if err := x.sw.Flush(); err != nil {
		return err
	}
	return x.file.Write(x.w)
}
