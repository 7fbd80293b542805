// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glycoenum/internal/app"
)

// Execute runs the CLI against os.Args and cancels on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRoot(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "glycoenum:", err)
		return err
	}
	return nil
}

// state is shared by the commands of one root.
type state struct {
	cfg     app.Config
	verbose bool
	quiet   bool
	log     *slog.Logger
}

func newRoot(stdout, stderr io.Writer) *cobra.Command {
	st := &state{cfg: app.Defaults()}

	root := &cobra.Command{
		Use:           "glycoenum",
		Short:         "Enumerate oligosaccharide sequences with formulas and masses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			st.log = app.NewLogger(cmd.ErrOrStderr(), st.verbose, st.quiet)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&st.cfg.MassModel, "model", st.cfg.MassModel, "atomic mass model (monoisotopic|average)")
	pf.StringVar(&st.cfg.Adduct, "adduct", st.cfg.Adduct, "adduct (neutral|[M+H]+|[M+Na]+)")
	pf.StringToStringVar(&st.cfg.Overrides, "override", nil, "element mass overrides, e.g. H=1.0078,Na=22.99")
	pf.IntVar(&st.cfg.Decimals, "decimals", st.cfg.Decimals, "decimal places of rendered masses")
	pf.BoolVar(&st.cfg.NoMZ, "no-mz", false, "omit the theoretical m/z column")
	pf.BoolVarP(&st.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&st.quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(calcCmd(st), countCmd(st), massCmd(st), summaryCmd(st), verifyCmd(st))
	return root
}
