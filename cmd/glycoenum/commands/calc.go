// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glycoenum/internal/export"
	"github.com/katalvlaran/glycoenum/internal/sink"
	"github.com/katalvlaran/glycoenum/report"
)

func calcCmd(st *state) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Report formulas, masses and sequences of one composition",
		Example: `  glycoenum calc --units Hex=3,deoxyhex=1
  glycoenum calc --units HexNAc=2,Hex=5 --adduct '[M+Na]+' --format csv --limit 100
  glycoenum calc --units Hex=4 -o tetrahexose.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := st.cfg.Counts()
			if err != nil {
				return err
			}
			b, err := st.cfg.Builder(cmd.Context())
			if err != nil {
				return err
			}
			res, err := b.Calculate(counts)
			if err != nil {
				return err
			}
			st.log.Debug("calculated", "units", counts.String(), "permutations", res.Permutations)

			if output != "" && !cmd.Flags().Changed("format") {
				format = ""
			}
			if output == "" && format == "xlsx" {
				output = export.DefaultOutputName
			}
			if output != "" {
				path, n, err := export.WriteResultFile(output, format, res)
				if err != nil {
					return err
				}
				st.log.Info("wrote sequences", "file", path, "rows", n, "truncated", res.Truncated())
				return nil
			}

			out := cmd.OutOrStdout()
			if format == "text" {
				if err := writeSummary(out, res); err != nil {
					return quietPipe(err)
				}
			}
			_, err = export.WriteResult(out, format, res)
			return quietPipe(err)
		},
	}

	cmd.Flags().StringToIntVar(&st.cfg.Units, "units", nil, "unit counts, e.g. Hex=3,deoxyhex=1")
	cmd.Flags().IntVar(&st.cfg.Limit, "limit", 0, "show at most N sequences (0 = all)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|csv|tsv|jsonl|xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

// writeSummary prints the per-composition block that precedes the text table.
func writeSummary(w io.Writer, res *report.Result) error {
	lines := [][2]string{
		{"Composition", res.Counts.String()},
		{"Pre-derivatization formula", res.BaseFormula},
		{"Post-derivatization formula", res.FinalFormula},
		{"Calculated mass", res.FormattedMass()},
	}
	if res.IncludeMZ() {
		lines = append(lines, [2]string{"Theoretical m/z", res.FormattedMZ()})
	}
	total := fmt.Sprint(res.Permutations)
	if res.Truncated() {
		total = fmt.Sprintf("%d (showing %d)", res.Permutations, res.Shown())
	}
	lines = append(lines, [2]string{"Total sequences", total})

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-28s %s\n", l[0]+":", l[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// quietPipe drops broken-pipe errors from stdout writes.
func quietPipe(err error) error {
	if sink.IsBrokenPipe(err) {
		return nil
	}
	return err
}
