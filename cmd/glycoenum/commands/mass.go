// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glycoenum/formula"
	"github.com/katalvlaran/glycoenum/internal/app"
	"github.com/katalvlaran/glycoenum/mass"
	"github.com/katalvlaran/glycoenum/report"
)

func massCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "mass <formula>",
		Short: "Print the Hill form and mass of a molecular formula",
		Example: `  glycoenum mass C6H12O6
  glycoenum mass 'C12 H22 O11' --adduct '[M+Na]+' --model average`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := st.cfg.Decimals
			if d < 0 || d > report.MaxDecimals {
				return fmt.Errorf("%w: --decimals %d not in [0, %d]", app.ErrInvalidFlag, d, report.MaxDecimals)
			}
			c, err := formula.ParseFormula(args[0])
			if err != nil {
				return err
			}
			overrides, err := app.ParseOverrides(st.cfg.Overrides)
			if err != nil {
				return err
			}
			table, err := mass.BuildTable(st.cfg.MassModel, overrides)
			if err != nil {
				return err
			}
			adduct, err := mass.ParseAdduct(st.cfg.Adduct)
			if err != nil {
				return err
			}
			neutral, err := table.Calculate(c)
			if err != nil {
				return err
			}
			ion, err := table.Ionize(neutral, adduct)
			if err != nil {
				return err
			}

			lines := [][2]string{
				{"Formula:", formula.FormatHill(c)},
				{"Neutral mass:", fmt.Sprintf("%s (%s)", report.FormatMass(neutral, d), table.Model())},
			}
			if adduct != mass.Neutral {
				lines = append(lines, [2]string{string(adduct) + ":", report.FormatMass(ion, d)})
			}
			if !st.cfg.NoMZ {
				h, err := table.HydrogenMass()
				if err != nil {
					return err
				}
				lines = append(lines, [2]string{"m/z:", report.FormatMass(ion+h, d)})
			}

			w := cmd.OutOrStdout()
			for _, l := range lines {
				if _, err := fmt.Fprintf(w, "%-14s %s\n", l[0], l[1]); err != nil {
					return quietPipe(err)
				}
			}
			return nil
		},
	}
}
