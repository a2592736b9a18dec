package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cgt-lang/cgt/runtime/canonical"
)

func newValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value EXPR",
		Short: "Canonicalize a game value written in CGT notation",
		Long: `Canonicalize a game value written in CGT notation.

The expression may be any well-formed value, canonical or not:
  cgt value '{0|0}'       prints *
  cgt value '{2|2}'       prints 2*
  cgt value '{0,*|0}'     prints ↑*
  cgt value '{3|5}'       prints 4

A value with a closed form is followed by a second line giving its
number, ups and star parts, e.g. "number=4 ups=0 star=0".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := canonical.NewStore()
			g, err := store.Parse(args[0])
			if err != nil {
				return err
			}

			useColor := shouldUseColor(flagNoColor)
			fmt.Fprintln(cmd.OutOrStdout(), colorize(g.String(), colorBold, useColor))

			if nus, ok := g.ToNus(); ok {
				fmt.Fprintf(cmd.OutOrStdout(),
					"number=%s ups=%d star=%s\n",
					nus.Number(), nus.Ups(), nus.Star())
			}
			return nil
		},
	}
}
