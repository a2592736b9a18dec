package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cgt-lang/cgt/runtime/canonical"
	"github.com/cgt-lang/cgt/runtime/games/domineering"
	"github.com/cgt-lang/cgt/runtime/partizan"
	"github.com/cgt-lang/cgt/runtime/transposition"
)

func newDomineeringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domineering BOARD",
		Short: "Compute the canonical form of a Domineering position",
		Long: `Compute the canonical form of a Domineering position.

The board is rows separated by '|', '.' free and '#' blocked:
  cgt domineering '..|..'    prints {1|-1}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := domineering.Parse(args[0])
			if err != nil {
				return err
			}

			store := canonical.NewStore()
			tt := transposition.New[domineering.Position](store)

			var form *canonical.Form
			if flagParallel {
				form, err = partizan.CanonicalFormParallel(
					cmd.Context(), pos, tt,
					partizan.ParallelOptions{Logger: slog.Default()})
				if err != nil {
					return err
				}
			} else {
				form = partizan.CanonicalForm(pos, tt)
			}

			slog.Debug("search finished",
				slog.Int("positions", tt.Len()),
				slog.Int("forms", store.Len()))

			useColor := shouldUseColor(flagNoColor)
			fmt.Fprintln(cmd.OutOrStdout(), colorize(form.String(), colorBold, useColor))
			return nil
		},
	}
}
