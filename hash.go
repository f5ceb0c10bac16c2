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

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// A hasher turns an Item into the 64-bit seed the block addressing and mask
// construction consume. It is chosen once, at filter construction, and
// never changes: Mode is immutable for the lifetime of a Filter.
type hasher interface {
	seed(it Item) (uint64, error)
}

// hostHasher passes a caller-supplied hash through unchanged. It makes no
// portability claim: the seed a HostHash filter stores is only meaningful
// within the process that produced it.
type hostHasher struct{}

func (hostHasher) seed(it Item) (uint64, error) {
	if it.kind != kindHash {
		return 0, ErrUnsupportedType
	}
	return it.hash, nil
}

// deterministicHasher canonically encodes an Item and hashes the result
// with a fixed, portable 64-bit hash (xxHash64), so that two filters fed
// the same items end up bit-identical regardless of process or machine.
type deterministicHasher struct{}

func (deterministicHasher) seed(it Item) (uint64, error) {
	if it.kind == kindHash {
		// A Deterministic filter owns its hashing end to end. Accepting a
		// caller-supplied hash here would break the cross-process
		// bit-reproducibility invariant that is the entire point of this
		// mode, so it is rejected rather than silently honored.
		return 0, ErrUnsupportedType
	}
	if it.kind == kindInt64 {
		// Fast path: no need to allocate canonicalBytes' slice for the
		// fixed 9-byte integer encoding.
		var buf [9]byte
		buf[0] = tagInt64
		binary.LittleEndian.PutUint64(buf[1:], uint64(it.i64))
		return xxhash.Sum64(buf[:]), nil
	}
	b, err := it.canonicalBytes()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(b), nil
}
