package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print FILE",
		Short: "Check a program and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := compile(cmd, opts, args[0])
			if err != nil {
				return err
			}
			defer s.Release()
			if !s.Valid {
				return semanticFailure(cmd)
			}
			fmt.Fprint(cmd.OutOrStdout(), s.Program.String())
			return nil
		},
	}
}
