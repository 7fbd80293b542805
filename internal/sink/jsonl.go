// SPDX-License-Identifier: MIT

package sink

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/katalvlaran/glycoenum/report"
)

func init() {
	Register("jsonl", "jsonl", newJSONL)
}

// bwPool reuses 64 KiB buffers across JSONL sinks.
var bwPool = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// jsonRow is the wire form of one row. The header is implied by the keys.
type jsonRow struct {
	Sequence     string `json:"sequence"`
	BaseFormula  string `json:"base_formula"`
	FinalFormula string `json:"final_formula"`
	Mass         string `json:"mass"`
	MZ           string `json:"mz,omitempty"`
}

type jsonlSink struct {
	bw        *bufio.Writer
	enc       *json.Encoder
	includeMZ bool
}

func newJSONL(w io.Writer, opts Options) (Sink, error) {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(w)
	return &jsonlSink{bw: bw, enc: json.NewEncoder(bw), includeMZ: opts.IncludeMZ}, nil
}

func (j *jsonlSink) Write(row report.Row) error {
	if j.bw == nil {
		return ErrClosed
	}
	out := jsonRow{
		Sequence:     row.Sequence,
		BaseFormula:  row.BaseFormula,
		FinalFormula: row.FinalFormula,
		Mass:         row.Mass,
	}
	if j.includeMZ {
		out.MZ = row.MZ
	}
	return j.enc.Encode(out)
}

func (j *jsonlSink) Close() error {
	if j.bw == nil {
		return nil
	}
	err := j.bw.Flush()
	j.bw.Reset(io.Discard)
	bwPool.Put(j.bw)
	j.bw, j.enc = nil, nil
	return err
}
