// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glycoenum/internal/export"
)

func verifyCmd(st *state) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check summary files against their manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := export.Verify(dir)
			if rep == nil {
				return err
			}
			for _, p := range rep.Problems {
				st.log.Error("verification failed", "file", p.File, "reason", p.Reason)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "OK: %d file(s), %d rows\n", rep.Checked, rep.Manifest.TotalRows)
			return quietPipe(err)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "summary directory")
	return cmd
}
