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

import "errors"

// Sentinel errors returned by this package. Callers should match them with
// errors.Is, since the concrete errors returned may be wrapped with extra
// context.
var (
	// ErrInvalidParameter is returned by New when capacity is zero or
	// fpRate is not strictly between 0 and 1.
	ErrInvalidParameter = errors.New("abloom: invalid parameter")

	// ErrUnsupportedType is returned when a Deterministic-mode filter is
	// given an Item that isn't text, bytes, or a signed integer, or when
	// a host-hash Item is used against a Deterministic-mode filter.
	ErrUnsupportedType = errors.New("abloom: unsupported item type")

	// ErrOutOfRange is returned by IntFromString when the integer is
	// outside [-2^63, 2^63-1].
	ErrOutOfRange = errors.New("abloom: integer out of int64 range")

	// ErrIncompatibleFilters is returned by Union, UnionInPlace, and
	// anything else that requires two filters to share capacity, fp rate,
	// mode, and block count.
	ErrIncompatibleFilters = errors.New("abloom: filters have incompatible parameters")

	// ErrTypeMismatch is returned when an operation is given a value that
	// cannot possibly be valid input, independent of filter state: a nil
	// *Filter passed to Union or UnionInPlace.
	ErrTypeMismatch = errors.New("abloom: type mismatch")

	// ErrNotSerializable is returned by ToBytes and Dump when the filter
	// is in HostHash mode.
	ErrNotSerializable = errors.New("abloom: filter is not serializable (host-hash mode)")

	// ErrInvalidFormat is returned by FromBytes and Load when the magic
	// bytes at the start of the input do not match.
	ErrInvalidFormat = errors.New("abloom: invalid format")

	// ErrUnsupportedVersion is returned by FromBytes and Load when the
	// version byte is not one this package knows how to decode.
	ErrUnsupportedVersion = errors.New("abloom: unsupported version")

	// ErrTruncated is returned by FromBytes and Load when the input is
	// shorter than the header, or its length does not match the block data
	// the header declares.
	ErrTruncated = errors.New("abloom: truncated input")
)
