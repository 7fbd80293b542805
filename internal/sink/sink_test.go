// SPDX-License-Identifier: MIT

package sink_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/glycoenum/internal/sink"
	"github.com/katalvlaran/glycoenum/report"
)

var rows = []report.Row{
	{Sequence: "Hex-Hex", BaseFormula: "C12H22O11", FinalFormula: "C32H40N4O12", Mass: "672.2643", MZ: "673.2721"},
	{Sequence: "Hex-UA", BaseFormula: "C12H20O12", FinalFormula: "C32H38N4O13", Mass: "686.2435", MZ: "687.2514"},
}

func write(t *testing.T, format string, opts sink.Options) string {
	t.Helper()
	var buf bytes.Buffer
	s, err := sink.New(format, &buf, opts)
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, s.Write(r))
	}
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second Close is a no-op")
	require.ErrorIs(t, s.Write(rows[0]), sink.ErrClosed)
	return buf.String()
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"csv", "jsonl", "text", "tsv", "xlsx"}, sink.Formats())
	assert.Equal(t, "txt", sink.Extension("TEXT"))
	assert.Equal(t, "xlsx", sink.Extension("xlsx"))
	assert.Equal(t, "", sink.Extension("parquet"))

	_, err := sink.New("parquet", io.Discard, sink.Options{})
	assert.ErrorIs(t, err, sink.ErrUnknownFormat)
}

func TestCSV(t *testing.T) {
	got := write(t, "csv", sink.Options{IncludeMZ: true})
	want := "Predicted compound,Pre-derivatization molecular formula,Post-derivatization molecular formula,Calculated mass,Theoretical m/z\n" +
		"Hex-Hex,C12H22O11,C32H40N4O12,672.2643,673.2721\n" +
		"Hex-UA,C12H20O12,C32H38N4O13,686.2435,687.2514\n"
	assert.Equal(t, want, got)
}

func TestTSV_WithoutMZ(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(write(t, "tsv", sink.Options{})), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Predicted compound\tPre-derivatization molecular formula\tPost-derivatization molecular formula\tCalculated mass", lines[0])
	assert.Equal(t, "Hex-UA\tC12H20O12\tC32H38N4O13\t686.2435", lines[2])
}

func TestJSONL(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader(write(t, "jsonl", sink.Options{IncludeMZ: true})))
	var got []map[string]string
	for sc.Scan() {
		var m map[string]string
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		got = append(got, m)
	}
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{
		"sequence": "Hex-Hex", "base_formula": "C12H22O11", "final_formula": "C32H40N4O12",
		"mass": "672.2643", "mz": "673.2721",
	}, got[0])

	noMZ := write(t, "jsonl", sink.Options{})
	assert.NotContains(t, noMZ, `"mz"`)
}

func TestText_Aligned(t *testing.T) {
	lines := strings.Split(strings.TrimRight(write(t, "text", sink.Options{}), "\n"), "\n")
	require.Len(t, lines, 3)
	col := strings.Index(lines[0], "Pre-derivatization")
	require.Positive(t, col)
	assert.Equal(t, "C12H22O11", strings.Fields(lines[1][col:])[0])
	assert.Equal(t, "C12H20O12", strings.Fields(lines[2][col:])[0])
}

func TestXLSX_RoundTrip(t *testing.T) {
	out := write(t, "xlsx", sink.Options{IncludeMZ: true, Sheet: "summary"})

	f, err := excelize.OpenReader(strings.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"summary"}, f.GetSheetList())
	got, err := f.GetRows("summary")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, report.Header(true), got[0])
	assert.Equal(t, rows[1].Values(true), got[2])
}

func TestXLSX_DefaultSheet(t *testing.T) {
	out := write(t, "xlsx", sink.Options{})
	f, err := excelize.OpenReader(strings.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{sink.DefaultSheet}, f.GetSheetList())
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, sink.IsBrokenPipe(syscall.EPIPE))
	assert.True(t, sink.IsBrokenPipe(fmt.Errorf("write stdout: %w", io.ErrClosedPipe)))
	assert.False(t, sink.IsBrokenPipe(errors.New("disk full")))
	assert.False(t, sink.IsBrokenPipe(nil))
}
