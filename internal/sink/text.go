// SPDX-License-Identifier: MIT

package sink

import (
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/glycoenum/report"
)

func init() {
	Register("text", "txt", newText)
}

// textBlock bounds how many rows tabwriter buffers before aligning them.
// Columns may shift between blocks of very long outputs.
const textBlock = 4096

type textSink struct {
	tw        *tabwriter.Writer
	includeMZ bool
	pending   int
	closed    bool
}

func newText(w io.Writer, opts Options) (Sink, error) {
	t := &textSink{
		tw:        tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
		includeMZ: opts.IncludeMZ,
	}
	if err := t.line(report.Header(opts.IncludeMZ)); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *textSink) line(cells []string) error {
	_, err := io.WriteString(t.tw, strings.Join(cells, "\t")+"\n")
	return err
}

func (t *textSink) Write(row report.Row) error {
	if t.closed {
		return ErrClosed
	}
	if err := t.line(row.Values(t.includeMZ)); err != nil {
		return err
	}
	t.pending++
	if t.pending == textBlock {
		t.pending = 0
		return t.tw.Flush()
	}
	return nil
}

func (t *textSink) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.tw.Flush()
}
