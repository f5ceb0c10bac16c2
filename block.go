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

import "math/bits"

// blockBits is the number of bits in a single block: 32 bytes, half a
// 64-byte cache line on amd64/arm64, split into k lanes of 32 bits each.
const blockBits = 256

// lanes is the number of 32-bit lanes per block, and k, the number of bits
// set per inserted item.
const lanes = 8

// salt holds the eight odd 32-bit constants of the Parquet/Impala
// split-block Bloom filter specification, chosen to keep the eight lanes'
// bit choices independent of one another.
var salt = [lanes]uint32{
	0x47b6137b,
	0x44974d91,
	0x8824ad5b,
	0xa2b7289d,
	0x705495c7,
	0x2df1424b,
	0x9efc4947,
	0x5c6bfb31,
}

// A block is a 256-bit split-block Bloom filter shard: eight independent
// 32-bit lanes, one bit set per lane per inserted item.
type block [lanes]uint32

// mask derives the 256-bit mask for seed h: for each lane j, the top five
// bits of h*salt[j] (mod 2^64) select one of the lane's 32 bit positions.
func mask(h uint64) block {
	var m block
	for j := 0; j < lanes; j++ {
		bit := uint32((h * uint64(salt[j])) >> 59)
		m[j] = 1 << bit
	}
	return m
}

// insert sets every bit of m in b.
func (b *block) insert(m block) {
	for j := 0; j < lanes; j++ {
		b[j] |= m[j]
	}
}

// has reports whether every bit of m is already set in b.
func (b *block) has(m block) bool {
	for j := 0; j < lanes; j++ {
		if b[j]&m[j] != m[j] {
			return false
		}
	}
	return true
}

// union sets b to the bitwise OR of b and c.
func (b *block) union(c *block) {
	for j := 0; j < lanes; j++ {
		b[j] |= c[j]
	}
}

// equal reports whether b and c have identical bits.
func (b *block) equal(c *block) bool {
	for j := 0; j < lanes; j++ {
		if b[j] != c[j] {
			return false
		}
	}
	return true
}

// isEmpty reports whether no bit of b is set.
func (b *block) isEmpty() bool {
	for j := 0; j < lanes; j++ {
		if b[j] != 0 {
			return false
		}
	}
	return true
}

// onesCount returns the number of set bits in b.
func (b *block) onesCount() int {
	n := 0
	for j := 0; j < lanes; j++ {
		n += bits.OnesCount32(b[j])
	}
	return n
}
