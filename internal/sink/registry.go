// SPDX-License-Identifier: MIT

package sink

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/glycoenum/report"
)

var (
	// ErrUnknownFormat is returned by New for an unregistered format name.
	ErrUnknownFormat = errors.New("sink: unknown format")

	// ErrRowLimit is returned when a format cannot hold another row.
	ErrRowLimit = errors.New("sink: row limit reached")

	// ErrClosed is returned by Write after Close.
	ErrClosed = errors.New("sink: closed")
)

// DefaultSheet names the worksheet of spreadsheet formats.
const DefaultSheet = "glycoenum"

// Sink receives report rows in order.
type Sink interface {
	Write(row report.Row) error
	Close() error
}

// Options shape the columns and container of a Sink.
type Options struct {
	// IncludeMZ adds the theoretical m/z column.
	IncludeMZ bool

	// Sheet names the worksheet (xlsx only); empty means DefaultSheet.
	Sheet string
}

// Factory builds a Sink over w and writes its header.
type Factory func(w io.Writer, opts Options) (Sink, error)

type format struct {
	factory Factory
	ext     string
}

// formats maps a lower-case format name to its factory. Last Register wins.
var formats = map[string]format{}

// Register installs factory under name, with ext as the file extension
// (without the dot).
func Register(name, ext string, factory Factory) {
	formats[strings.ToLower(name)] = format{factory: factory, ext: ext}
}

// New creates a Sink of the named format over w.
//
// Errors: ErrUnknownFormat, or the factory's header write error.
func New(name string, w io.Writer, opts Options) (Sink, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return f.factory(w, opts)
}

// Extension returns the file extension of a format, or "" if unknown.
func Extension(name string) string {
	return formats[strings.ToLower(strings.TrimSpace(name))].ext
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for name := range formats {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
