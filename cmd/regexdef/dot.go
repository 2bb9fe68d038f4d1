package main

import (
	"github.com/spf13/cobra"

	"regexdef/internal/ast"
)

func newDotCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot FILE",
		Short: "Check a program and write its syntax tree as Graphviz",
		Long: `Writes the syntax tree in DOT format to standard output.
Render it with: regexdef dot prog.rd | dot -Tpng -o ast.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := compile(cmd, opts, args[0])
			if err != nil {
				return err
			}
			defer s.Release()
			if err := ast.WriteDOT(cmd.OutOrStdout(), s.Program); err != nil {
				return err
			}
			if !s.Valid {
				return semanticFailure(cmd)
			}
			return nil
		},
	}
}
