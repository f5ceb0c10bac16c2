package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ampribe/abloom"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <filter-file>",
		Short: "Query membership in a persisted filter, one word per line on stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			f, err := abloom.Load(in)
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			slog.Info("filter loaded",
				"capacity", f.Capacity(),
				"fp_rate", f.FPRate(),
				"bytes", f.ByteCount())

			out := cmd.OutOrStdout()
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				word := sc.Text()
				ok, err := f.Contains(abloom.Text(word))
				if err != nil {
					return fmt.Errorf("checking %q: %w", word, err)
				}
				if ok {
					fmt.Fprintf(out, "maybe  %s\n", word)
				} else {
					fmt.Fprintf(out, "absent %s\n", word)
				}
			}
			return sc.Err()
		},
	}
	return cmd
}
