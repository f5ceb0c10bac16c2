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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S5: a dump round-trips untouched, and each form of corruption is caught
// with the expected error.
func TestScenarioS5(t *testing.T) {
	t.Parallel()

	f := newFilled(t, "apple", "banana", "cherry")

	data, err := f.ToBytes()
	require.NoError(t, err)

	g, err := FromBytes(data)
	require.NoError(t, err)
	assert.True(t, f.Equals(g))

	var buf bytes.Buffer
	n, err := f.Dump(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, len(data), n)

	h, err := Load(&buf)
	require.NoError(t, err)
	assert.True(t, f.Equals(h))

	corruptMagic := append([]byte(nil), data...)
	corruptMagic[0] = 'X'
	_, err = FromBytes(corruptMagic)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	corruptVersion := append([]byte(nil), data...)
	corruptVersion[4] = 0x7f
	_, err = FromBytes(corruptVersion)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = FromBytes(data[:len(data)-1])
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = FromBytes(append(append([]byte(nil), data...), 0))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = FromBytes(data[:headerSize-1])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestToBytesRejectsHostHash(t *testing.T) {
	t.Parallel()

	f, err := New(1000, 0.01, HostHash)
	require.NoError(t, err)

	_, err = f.ToBytes()
	assert.ErrorIs(t, err, ErrNotSerializable)
}

// Property 8: serialization round-trips bit-exactly, including headers.
func TestSerializationRoundTrip(t *testing.T) {
	t.Parallel()

	f, err := New(50000, 0.02, Deterministic)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.NoError(t, f.Insert(Int(int64(i))))
	}

	data1, err := f.ToBytes()
	require.NoError(t, err)
	data2, err := f.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, data1, data2)

	g, err := FromBytes(data1)
	require.NoError(t, err)
	assert.Equal(t, g.Mode(), Deterministic)
	assert.Equal(t, f.Capacity(), g.Capacity())
	assert.Equal(t, f.FPRate(), g.FPRate())
	assert.Equal(t, f.BitCount(), g.BitCount())
	assert.True(t, f.Equals(g))

	redata, err := g.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, data1, redata)
}

// Property 2: two independently-built deterministic filters over the same
// items produce byte-identical encodings.
func TestDeterminismAcrossInstances(t *testing.T) {
	t.Parallel()

	items := []Item{Text("apple"), Bytes([]byte("banana")), Int(-42)}

	build := func() *Filter {
		f, err := New(1000, 0.01, Deterministic)
		require.NoError(t, err)
		for _, it := range items {
			require.NoError(t, f.Insert(it))
		}
		return f
	}

	a, b := build(), build()

	da, err := a.ToBytes()
	require.NoError(t, err)
	db, err := b.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, da, db)
}
