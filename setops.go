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

// Clear resets f to its empty state without reallocating its bit array.
func (f *Filter) Clear() {
	for i := range f.blocks {
		f.blocks[i] = block{}
	}
}

// Copy returns an independent Filter with the same parameters and bit
// state as f. Mutating the copy does not affect f, and vice versa.
func (f *Filter) Copy() *Filter {
	g := &Filter{
		capacity: f.capacity,
		fpRate:   f.fpRate,
		mode:     f.mode,
		blocks:   make([]block, len(f.blocks)),
	}
	copy(g.blocks, f.blocks)
	return g
}

// sameParams reports whether f and g share the parameters required for
// union and equality: capacity, false positive rate, mode, and block
// count.
func (f *Filter) sameParams(g *Filter) bool {
	return f.capacity == g.capacity &&
		f.fpRate == g.fpRate &&
		f.mode == g.mode &&
		len(f.blocks) == len(g.blocks)
}

// Union returns a new Filter whose bits are the bitwise OR of f's and
// other's. It returns ErrIncompatibleFilters if f and other do not share
// capacity, false positive rate, mode, and block count.
func (f *Filter) Union(other *Filter) (*Filter, error) {
	if other == nil {
		return nil, ErrTypeMismatch
	}
	if !f.sameParams(other) {
		return nil, ErrIncompatibleFilters
	}
	u := f.Copy()
	if err := u.UnionInPlace(other); err != nil {
		return nil, err
	}
	return u, nil
}

// UnionInPlace ORs other's bits into f. It returns ErrIncompatibleFilters
// if f and other do not share capacity, false positive rate, mode, and
// block count; in that case f is left unmodified.
func (f *Filter) UnionInPlace(other *Filter) error {
	if other == nil {
		return ErrTypeMismatch
	}
	if !f.sameParams(other) {
		return ErrIncompatibleFilters
	}
	for i := range f.blocks {
		f.blocks[i].union(&other.blocks[i])
	}
	return nil
}

// Equals reports whether f and other have identical capacity, false
// positive rate, mode, block count, and bits. Filters in different modes
// are never equal, even when both are empty.
func (f *Filter) Equals(other *Filter) bool {
	if other == nil {
		return false
	}
	if !f.sameParams(other) {
		return false
	}
	for i := range f.blocks {
		if !f.blocks[i].equal(&other.blocks[i]) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no bit is set in f.
func (f *Filter) IsEmpty() bool {
	for i := range f.blocks {
		if !f.blocks[i].isEmpty() {
			return false
		}
	}
	return true
}
