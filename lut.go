// Copyright 2024 the abloom authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package abloom

// lutMin, lutStep, and lut together tabulate bits-per-element c as a
// function of x = -log2(fpRate) for a 256-bit, k=8, 32-bit-lane
// split-block filter. x ranges over [1.0, 20.0] in steps of 0.5.
//
// Generated offline by solving fprOf(c) == 2**-x by bisection for each x
// (see the bisection in solveBisect, and the standalone Python generator
// this mirrors, scripts/generate_lut.py --block-bits 256 in the original
// project this package's design was distilled from). Baked in as a
// constant so Solve never needs to run an iterative solver on the common
// path.
const (
	lutMin  = 1.0
	lutStep = 0.5
)

var lut = [...]float64{
	3.2472, 3.8605, 4.4448, 5.0229, 5.6064, 6.2028, 6.8175,
	7.4549, 8.1187, 8.8123, 9.5391, 10.3024, 11.1055, 11.9520,
	12.8453, 13.7895, 14.7885, 15.8467, 16.9687, 18.1597, 19.4251,
	20.7707, 22.2030, 23.7290, 25.3562, 27.0929, 28.9482, 30.9320,
	33.0551, 35.3295, 37.7683, 40.3859, 43.1983, 46.2230, 49.4794,
	52.9890, 56.7757, 60.8659, 65.2892,
}

// lutLookup returns bits-per-element for false positive rate fpRate using
// the precomputed table, with linear interpolation between samples and
// linear extrapolation by the slope of the last interval beyond x=20. It
// reports false if x is below lutMin, where the table is too coarse to
// trust and the caller should fall back to solveBisect.
func lutLookup(x float64) (c float64, ok bool) {
	if x < lutMin {
		return 0, false
	}

	last := len(lut) - 1
	xMax := lutMin + float64(last)*lutStep
	if x >= xMax {
		slope := (lut[last] - lut[last-1]) / lutStep
		return lut[last] + slope*(x-xMax), true
	}

	pos := (x - lutMin) / lutStep
	idx := int(pos)
	if idx >= last {
		idx = last - 1
	}
	t := pos - float64(idx)
	return lut[idx]*(1-t) + lut[idx+1]*t, true
}
