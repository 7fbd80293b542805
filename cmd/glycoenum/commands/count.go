// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glycoenum/permute"
)

func countCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of distinct sequences of a composition",
		Long: `Prints the multinomial (Σn)! / Πn! for the given unit counts.
Unlike calc, any total is accepted; the count is exact at any size.`,
		Example: "  glycoenum count --units Hex=5,HexNAc=4,deoxyhex=1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := st.cfg.Counts()
			if err != nil {
				return err
			}
			n, err := permute.CountBig(counts.Multiset())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n.String())
			return quietPipe(err)
		},
	}
	cmd.Flags().StringToIntVar(&st.cfg.Units, "units", nil, "unit counts, e.g. Hex=3,deoxyhex=1")
	return cmd
}
