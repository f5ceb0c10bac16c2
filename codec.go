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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// headerSize is the fixed size, in bytes, of the encoded header: magic(4)
// + version(1) + capacity(8) + fp_rate(8) + block_count(8).
const headerSize = 29

var magic = [4]byte{'A', 'B', 'L', 'M'}

const version1 = 0x01

// ToBytes encodes f into a self-describing byte sequence: a 29-byte header
// (magic, version, capacity, fp_rate, block count) followed by the raw
// block data, all little-endian, for a total of headerSize + 32*blockCount
// bytes. It returns ErrNotSerializable if f is in HostHash mode, since a
// host hash's bit pattern is meaningless outside the process that produced
// it.
func (f *Filter) ToBytes() ([]byte, error) {
	if f.mode != Deterministic {
		return nil, ErrNotSerializable
	}

	buf := make([]byte, headerSize+len(f.blocks)*lanes*4)
	copy(buf[0:4], magic[:])
	buf[4] = version1
	binary.LittleEndian.PutUint64(buf[5:13], f.capacity)
	binary.LittleEndian.PutUint64(buf[13:21], math.Float64bits(f.fpRate))
	binary.LittleEndian.PutUint64(buf[21:29], uint64(len(f.blocks)))

	off := headerSize
	for i := range f.blocks {
		for j := 0; j < lanes; j++ {
			binary.LittleEndian.PutUint32(buf[off:off+4], f.blocks[i][j])
			off += 4
		}
	}
	return buf, nil
}

// Dump writes f to w in the ToBytes format and returns the number of bytes
// written. It returns ErrNotSerializable if f is in HostHash mode.
func (f *Filter) Dump(w io.Writer) (int64, error) {
	buf, err := f.ToBytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("abloom: writing filter: %w", err)
	}
	return int64(n), nil
}

// FromBytes decodes a Filter previously produced by ToBytes or Dump. The
// result always has Mode() == Deterministic, regardless of how the
// original filter was constructed: only Deterministic filters can be
// encoded in the first place.
//
// It returns ErrTruncated if data is shorter than the header, or if its
// total length doesn't match the block count declared in the header,
// ErrInvalidFormat if the magic bytes don't match, and
// ErrUnsupportedVersion if the version byte is unrecognized.
func FromBytes(data []byte) (*Filter, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if !bytes.Equal(data[0:4], magic[:]) {
		return nil, ErrInvalidFormat
	}
	if data[4] != version1 {
		return nil, ErrUnsupportedVersion
	}

	capacity := binary.LittleEndian.Uint64(data[5:13])
	fpRate := math.Float64frombits(binary.LittleEndian.Uint64(data[13:21]))
	nblocks := binary.LittleEndian.Uint64(data[21:29])

	want := headerSize + nblocks*lanes*4
	if uint64(len(data)) != want {
		return nil, ErrTruncated
	}

	blocks := make([]block, nblocks)
	off := headerSize
	for i := range blocks {
		for j := 0; j < lanes; j++ {
			blocks[i][j] = binary.LittleEndian.Uint32(data[off : off+4])
			off += 4
		}
	}

	return &Filter{
		capacity: capacity,
		fpRate:   fpRate,
		mode:     Deterministic,
		blocks:   blocks,
	}, nil
}

// Load reads a Filter in the ToBytes/Dump format from r. See FromBytes for
// the error conditions; input that ends early surfaces as ErrTruncated,
// and an error from r itself is returned wrapped.
func Load(r io.Reader) (*Filter, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("abloom: reading filter: %w", err)
	}
	return FromBytes(data)
}
