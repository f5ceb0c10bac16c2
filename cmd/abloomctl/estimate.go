package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ampribe/abloom"
)

const (
	kiB = 1 << 10
	miB = 1 << 20
	giB = 1 << 30
)

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <capacity> <fp-rate>",
		Short: "Report the size and false positive rate of a hypothetical filter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				capacity uint64
				fpRate   float64
			)
			if _, err := fmt.Sscanf(args[0], "%d", &capacity); err != nil {
				return fmt.Errorf("capacity %q: %w", args[0], err)
			}
			if _, err := fmt.Sscanf(args[1], "%g", &fpRate); err != nil {
				return fmt.Errorf("false positive rate %q: %w", args[1], err)
			}

			nblocks, bitsPerElement, err := abloom.Solve(capacity, fpRate)
			if err != nil {
				return err
			}

			bits := nblocks * 32 * 8 // blocks * lanes * 32 bits per lane
			size, unit := memsize(float64(bits))
			expected := abloom.FPRate(capacity, nblocks)

			fmt.Fprintf(cmd.OutOrStdout(), "%d blocks, %d bits, %.02f %s\n"+
				"%.02f bits/key\n"+
				"8 hash lanes per item\n"+
				"%.04f expected false positive rate\n",
				nblocks, bits, size, unit, bitsPerElement, expected)
			return nil
		},
	}
	return cmd
}

func memsize(bits float64) (size float64, unit string) {
	size = bits / 8
	switch {
	case size >= giB:
		return size / giB, "GiB"
	case size >= miB:
		return size / miB, "MiB"
	case size >= kiB:
		return size / kiB, "kiB"
	default:
		return size, "B"
	}
}
