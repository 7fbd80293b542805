// SPDX-License-Identifier: MIT

package export

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/glycoenum/internal/sink"
	"github.com/katalvlaran/glycoenum/report"
)

// WriteResult writes the header and res.Rows() to w in the given format and
// returns the number of data rows written.
func WriteResult(w io.Writer, format string, res *report.Result) (uint64, error) {
	s, err := sink.New(format, w, sink.Options{IncludeMZ: res.IncludeMZ(), Sheet: sink.DefaultSheet})
	if err != nil {
		return 0, err
	}

	var n uint64
	for row := range res.Rows() {
		if err := s.Write(row); err != nil {
			_ = s.Close()
			return n, err
		}
		n++
	}
	return n, s.Close()
}

// WriteResultFile writes res to path atomically. An empty format is taken
// from the path's extension; an empty path means DefaultOutputName.
func WriteResultFile(path, format string, res *report.Result) (string, uint64, error) {
	if path == "" {
		path = DefaultOutputName
	}
	if format == "" {
		format = FormatFromPath(path)
	}

	var n uint64
	err := atomicWrite(path, func(w io.Writer) error {
		var err error
		n, err = WriteResult(w, format, res)
		return err
	})
	return path, n, err
}

// FormatFromPath maps a file extension to a sink format ("txt" → "text").
// Unknown extensions map to xlsx.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range sink.Formats() {
		if sink.Extension(f) == ext {
			return f
		}
	}
	return "xlsx"
}
