// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/db47h/alusim/alu"
	"github.com/spf13/cobra"
)

// printResult prints the ALU result in binary, unsigned and signed decimal.
//
func printResult(w io.Writer, u *alu.ALU) {
	fmt.Fprintf(w, "%s %d %d\n", u.Result, u.ResultUint64(), u.ResultInt64())
}

func newExecCmd() *cobra.Command {
	var (
		width  int
		opName string
		a, b   uint64
		negate bool
	)
	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Evaluate the ALU once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, neg, err := alu.ParseOp(opName)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("negate") {
				neg = negate
			}
			u, err := alu.New(width)
			if err != nil {
				return err
			}
			u.Eval(op, neg, a, b)
			slog.Debug("execute", "width", width, "op", op, "negate", neg, "a", a, "b", b, "result", u.ResultUint64(), "carry", u.CarryOut())
			printResult(cmd.OutOrStdout(), u)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&width, "width", "w", 32, "ALU width in bits")
	f.StringVarP(&opName, "op", "o", "add", "operation: and, or, add, sub, slt, xor or a selector value 0-7")
	f.Uint64VarP(&a, "a", "a", 0, "operand A")
	f.Uint64VarP(&b, "b", "b", 0, "operand B")
	f.BoolVarP(&negate, "negate", "n", false, "negate operand B (overrides the operation default)")
	return cmd
}
