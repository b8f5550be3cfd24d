// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command alusim evaluates a gate-level N-bit ALU.
//
//	alusim exec --width 4 --op add -a 3 -b 1
//	alusim run vectors.yaml
//	alusim table --width 2 --op slt
//
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "alusim",
		Short:         "Gate-level N-bit ALU simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every evaluation")
	root.AddCommand(newExecCmd(), newRunCmd(), newTableCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("alusim failed", "error", err)
		os.Exit(1)
	}
}
