package main

import (
	"fmt"

	"github.com/ampribe/abloom"
)

func parseMode(s string) (abloom.Mode, error) {
	switch s {
	case "deterministic":
		return abloom.Deterministic, nil
	case "host-hash":
		return abloom.HostHash, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: want deterministic or host-hash", s)
	}
}
