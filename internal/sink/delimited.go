// SPDX-License-Identifier: MIT

package sink

import (
	"encoding/csv"
	"io"

	"github.com/katalvlaran/glycoenum/report"
)

func init() {
	Register("csv", "csv", func(w io.Writer, opts Options) (Sink, error) {
		return newDelimited(w, ',', opts)
	})
	Register("tsv", "tsv", func(w io.Writer, opts Options) (Sink, error) {
		return newDelimited(w, '\t', opts)
	})
}

// delimited writes CSV or TSV through encoding/csv.
type delimited struct {
	cw        *csv.Writer
	includeMZ bool
	closed    bool
}

func newDelimited(w io.Writer, comma rune, opts Options) (*delimited, error) {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(report.Header(opts.IncludeMZ)); err != nil {
		return nil, err
	}
	return &delimited{cw: cw, includeMZ: opts.IncludeMZ}, nil
}

func (d *delimited) Write(row report.Row) error {
	if d.closed {
		return ErrClosed
	}
	return d.cw.Write(row.Values(d.includeMZ))
}

func (d *delimited) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.cw.Flush()
	return d.cw.Error()
}
