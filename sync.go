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

import "sync/atomic"

// A SyncFilter is a Filter that may be inserted into and looked up from
// multiple goroutines concurrently, using lock-free atomic bit operations
// instead of requiring external synchronization.
//
// A SyncFilter behaves like a Filter protected by a lock around every
// operation, but without the lock. It does not support Union, Copy, or the
// persistence codec directly; convert with AsFilter first (safe only once
// concurrent writers have stopped).
type SyncFilter Filter

// NewSync is like New but returns a SyncFilter.
func NewSync(capacity uint64, fpRate float64, mode Mode) (*SyncFilter, error) {
	f, err := New(capacity, fpRate, mode)
	if err != nil {
		return nil, err
	}
	return (*SyncFilter)(f), nil
}

// AsFilter returns the SyncFilter as a plain *Filter, for use with
// operations SyncFilter doesn't implement itself (Copy, Union, ToBytes).
// It does not copy the bit array: callers must ensure no other goroutine
// is concurrently writing to f before using the result.
func (f *SyncFilter) AsFilter() *Filter { return (*Filter)(f) }

// Insert atomically adds item to f.
func (f *SyncFilter) Insert(item Item) error {
	h, err := f.mode.hasher().seed(item)
	if err != nil {
		return err
	}
	m := mask(h)
	f.blocks[blockIndex(h, len(f.blocks))].insertAtomic(m)
	return nil
}

// Contains atomically reports whether item has been inserted into f.
func (f *SyncFilter) Contains(item Item) (bool, error) {
	h, err := f.mode.hasher().seed(item)
	if err != nil {
		return false, err
	}
	m := mask(h)
	return f.blocks[blockIndex(h, len(f.blocks))].hasAtomic(m), nil
}

// insertAtomic sets every bit of m in b, atomically, lane by lane.
func (b *block) insertAtomic(m block) {
	for j := 0; j < lanes; j++ {
		if m[j] == 0 {
			continue
		}
		p := &b[j]
		for {
			old := atomic.LoadUint32(p)
			if old&m[j] == m[j] {
				// Already set: checking here instead of relying on the
				// CAS's return value avoids a retry loop on the common
				// case of re-inserting an existing item.
				break
			}
			if atomic.CompareAndSwapUint32(p, old, old|m[j]) {
				break
			}
		}
	}
}

// hasAtomic reports whether every bit of m is already set in b.
func (b *block) hasAtomic(m block) bool {
	for j := 0; j < lanes; j++ {
		if atomic.LoadUint32(&b[j])&m[j] != m[j] {
			return false
		}
	}
	return true
}
