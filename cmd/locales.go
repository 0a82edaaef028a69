package cmd

import (
	"datefinder/locale"
	"fmt"

	"github.com/spf13/cobra"
)

var Locales *cobra.Command

func init() {
	Locales = &cobra.Command{
		Use:   "locales",
		Short: "List the bundled locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range locale.Available() {
				lex, err := locale.Load(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", lex.Name(), lex.Tag(), lex.Order())
			}
			return nil
		},
	}
}
