// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/db47h/alusim/internal/vectors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run vectors.yaml...",
		Short: "Run test vectors from YAML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				f, err := vectors.Load(path)
				if err != nil {
					return err
				}
				out, err := f.Run()
				if err != nil {
					return errors.Wrap(err, path)
				}
				for _, o := range out {
					status := "    "
					if o.Checked() {
						status = "ok  "
						if !o.Pass() {
							status = "FAIL"
							failed++
						}
					}
					fmt.Fprintf(w, "%s %s:%d %v negate=%v a=%d b=%d => %d", status, path, o.Index, o.OpCode, o.BNeg, o.A, o.B, o.Got)
					if o.Checked() && !o.Pass() {
						fmt.Fprintf(w, " (want %d)", *o.Want)
					}
					fmt.Fprintln(w)
				}
				slog.Debug("vector file done", "path", path, "width", f.Width, "vectors", len(out))
			}
			if failed > 0 {
				return errors.Errorf("%d vector(s) failed", failed)
			}
			return nil
		},
	}
}
