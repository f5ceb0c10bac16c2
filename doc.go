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

// Package abloom implements a split-block Bloom filter (SBBF).
//
// A Bloom filter is an approximate set data structure: if a key has been
// inserted into a filter, a lookup of that key returns true, but if the key
// has not been inserted, there is a non-zero probability that the lookup
// still returns true (a false positive). False negatives never happen.
//
// Split-block filters concentrate all of a key's set bits into a single
// 256-bit (32-byte) block, selected by part of the key's hash. Compared to
// a filter that scatters its bits across the whole bit array, this costs a
// small amount of accuracy but means every lookup touches one cache line
// instead of up to k.
//
// Filters come in two hashing modes, fixed at construction and never mixed:
//
//   - HostHash filters accept a caller-supplied 64-bit hash directly. They
//     are fast and make no portability claims: the resulting bit pattern is
//     only meaningful within the process that produced it.
//   - Deterministic filters canonically encode each inserted item (text,
//     raw bytes, or a signed 64-bit integer) and hash the result with a
//     fixed, portable hash function. Two Deterministic filters built from
//     the same items, in any order, on any machine, end up bit-identical.
//     Only Deterministic filters can be serialized with ToBytes/Dump.
//
// For background on the algorithm, see the Apache Parquet/Impala
// split-block Bloom filter specification and Putze, Sanders & Singler,
// "Cache-, Hash- and Space-Efficient Bloom Filters" (2010).
package abloom
