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

import "iter"

// Extend inserts every item produced by seq into f, in order. seq is
// consumed exactly once.
//
// If an item fails the full insert path (for instance, an Item kind that
// f's mode does not accept), Extend returns
// that error immediately. Items already inserted before the failing one
// remain in f: there is no transactional rollback.
func (f *Filter) Extend(seq iter.Seq[Item]) error {
	var err error
	for item := range seq {
		if err = f.Insert(item); err != nil {
			break
		}
	}
	return err
}

// ExtendSlice inserts every item in items into f, in order, stopping at
// the first error with the same early-termination semantics as Extend.
func (f *Filter) ExtendSlice(items []Item) error {
	return f.Extend(func(yield func(Item) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	})
}
