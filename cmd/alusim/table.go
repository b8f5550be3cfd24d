// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/alusim/alu"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// maxTableWidth bounds the operand space printed by the table command.
const maxTableWidth = 6

func newTableCmd() *cobra.Command {
	var (
		width  int
		opName string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the ALU result for every pair of operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width > maxTableWidth {
				return errors.Errorf("table width %d exceeds %d", width, maxTableWidth)
			}
			op, neg, err := alu.ParseOp(opName)
			if err != nil {
				return err
			}
			u, err := alu.New(width)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			n := uint64(1) << uint(width)
			for a := uint64(0); a < n; a++ {
				for b := uint64(0); b < n; b++ {
					u.Eval(op, neg, a, b)
					fmt.Fprintf(w, "%s %s %s\n", u.A, u.B, u.Result)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 2, "ALU width in bits")
	cmd.Flags().StringVarP(&opName, "op", "o", "add", "operation")
	return cmd
}
