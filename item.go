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
	"math/big"
)

// itemKind is the closed set of shapes an Item can take. Deterministic-mode
// filters only accept kindText, kindBytes, and kindInt64; HostHash-mode
// filters only accept kindHash.
type itemKind uint8

const (
	kindText itemKind = iota
	kindBytes
	kindInt64
	kindHash
)

// Type tags prefixed onto the canonical byte encoding of an Item before
// hashing, as fixed by the wire format: this makes "apple" (text) hash
// differently from the bytes {'a','p','p','l','e'}.
const (
	tagText  byte = 0x01
	tagBytes byte = 0x02
	tagInt64 byte = 0x03
)

// An Item is a value that can be inserted into or looked up in a Filter.
// Items are produced by the Text, Bytes, Int, IntFromString, and HashSeed
// constructors; there is no other way to build one, since a Filter's Deterministic mode
// needs to reject anything outside this closed set before it ever reaches
// the hasher.
type Item struct {
	kind  itemKind
	text  string
	bytes []byte
	i64   int64
	hash  uint64
}

// Text builds an Item from a UTF-8 string, for use with Deterministic-mode
// filters; HostHash-mode filters reject it with ErrUnsupportedType.
func Text(s string) Item {
	return Item{kind: kindText, text: s}
}

// Bytes builds an Item from a raw byte slice, for use with
// Deterministic-mode filters; HostHash-mode filters reject it with
// ErrUnsupportedType. The bytes are not copied; callers must not mutate b after passing
// it to Bytes and before the Item is consumed.
func Bytes(b []byte) Item {
	return Item{kind: kindBytes, bytes: b}
}

// Int builds an Item from a signed 64-bit integer, for use with
// Deterministic-mode filters; HostHash-mode filters reject it with
// ErrUnsupportedType. Integers given as decimal text that may exceed the
// int64 range go through IntFromString instead.
func Int(i int64) Item {
	return Item{kind: kindInt64, i64: i}
}

var (
	minInt64 = big.NewInt(-1 << 63)
	maxInt64 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1))
)

// IntFromString builds an Item from a base-10 integer literal of arbitrary
// precision, such as one parsed out of a request body or a foreign
// language's unbounded integer type. It is the binding-surface entry point
// spec'd for callers whose integers might exceed Go's own int64: it
// validates the value fits in [-2^63, 2^63-1] itself and returns
// ErrOutOfRange if not, rather than silently truncating or wrapping.
func IntFromString(s string) (Item, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Item{}, ErrUnsupportedType
	}
	if n.Cmp(minInt64) < 0 || n.Cmp(maxInt64) > 0 {
		return Item{}, ErrOutOfRange
	}
	return Int(n.Int64()), nil
}

// HashSeed builds an Item that carries a pre-computed 64-bit hash, for use
// only with HostHash-mode filters. The hash is passed through to the block
// addressing and mask construction unchanged: HashSeed is how a caller
// plugs in its own hash function.
func HashSeed(h uint64) Item {
	return Item{kind: kindHash, hash: h}
}

// canonicalBytes returns the type-tagged canonical encoding of the item, as
// specified for Deterministic mode: a one-byte type tag followed by the
// item's bytes (UTF-8 for text, as-is for bytes, 8 little-endian bytes for
// an integer).
func (it Item) canonicalBytes() ([]byte, error) {
	switch it.kind {
	case kindText:
		buf := make([]byte, 1+len(it.text))
		buf[0] = tagText
		copy(buf[1:], it.text)
		return buf, nil
	case kindBytes:
		buf := make([]byte, 1+len(it.bytes))
		buf[0] = tagBytes
		copy(buf[1:], it.bytes)
		return buf, nil
	case kindInt64:
		buf := make([]byte, 9)
		buf[0] = tagInt64
		binary.LittleEndian.PutUint64(buf[1:], uint64(it.i64))
		return buf, nil
	default:
		return nil, ErrUnsupportedType
	}
}
