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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalBytesTagging(t *testing.T) {
	t.Parallel()

	text, err := Text("apple").canonicalBytes()
	require.NoError(t, err)
	assert.Equal(t, append([]byte{tagText}, "apple"...), text)

	raw, err := Bytes([]byte("apple")).canonicalBytes()
	require.NoError(t, err)
	assert.Equal(t, append([]byte{tagBytes}, "apple"...), raw)

	// Text and Bytes of the same content must not collide: the tag byte
	// makes them distinguishable before hashing.
	assert.NotEqual(t, text, raw)

	n, err := Int(-1).canonicalBytes()
	require.NoError(t, err)
	assert.Equal(t, byte(tagInt64), n[0])
	assert.Len(t, n, 9)
}

func TestCanonicalBytesRejectsHashSeed(t *testing.T) {
	t.Parallel()

	_, err := HashSeed(42).canonicalBytes()
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestIntFromString(t *testing.T) {
	t.Parallel()

	it, err := IntFromString("123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), it.i64)

	it, err = IntFromString(fmt.Sprintf("%d", int64(1)<<62))
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, it.i64)

	_, err = IntFromString("9223372036854775808") // 2^63
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = IntFromString("-9223372036854775809") // -2^63 - 1
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = IntFromString("not a number")
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestIntFromStringBoundary(t *testing.T) {
	t.Parallel()

	it, err := IntFromString("9223372036854775807") // 2^63 - 1
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<63-1, it.i64)

	it, err = IntFromString("-9223372036854775808") // -2^63
	require.NoError(t, err)
	assert.Equal(t, int64(-1)<<63, it.i64)
}
