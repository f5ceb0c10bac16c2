package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ampribe/abloom"
)

func buildCmd() *cobra.Command {
	var (
		capacity uint64
		fpRate   float64
		mode     string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "build <words-file>",
		Short: "Build a filter from a newline-delimited word list and persist it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("capacity") {
				capacity = cfg.Capacity
			}
			if !cmd.Flags().Changed("fp-rate") {
				fpRate = cfg.FPRate
			}
			if !cmd.Flags().Changed("mode") {
				mode = cfg.Mode
			}
			if outPath == "" {
				return fmt.Errorf("-o/--output is required")
			}

			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			f, err := abloom.New(capacity, fpRate, m)
			if err != nil {
				return err
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			var n int
			sc := bufio.NewScanner(in)
			for sc.Scan() {
				if err := f.Insert(abloom.Text(sc.Text())); err != nil {
					return fmt.Errorf("inserting %q: %w", sc.Text(), err)
				}
				n++
			}
			if err := sc.Err(); err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			written, err := f.Dump(out)
			if err != nil {
				return err
			}

			slog.Info("filter built",
				"words", n,
				"bytes_on_disk", written,
				"mode", m,
				"output", outPath)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&capacity, "capacity", defaultCapacity, "expected number of distinct words")
	cmd.Flags().Float64Var(&fpRate, "fp-rate", defaultFPRate, "target false positive rate")
	cmd.Flags().StringVar(&mode, "mode", defaultMode, "hashing mode: deterministic or host-hash")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file for the persisted filter")

	return cmd
}
