package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse and semantically check a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, opts *rootOptions, path string) error {
	s, err := compile(cmd, opts, path)
	if err != nil {
		return err
	}
	defer s.Release()
	if !s.Valid {
		return semanticFailure(cmd)
	}
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Compilation successful"))
	return nil
}
