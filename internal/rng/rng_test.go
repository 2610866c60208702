// Copyright 2022 The Armored Wallet authors. All Rights Reserved.
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

package rng

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type seq []uint32

func (s *seq) Random32() uint32 {
	v := (*s)[0]
	*s = (*s)[1:]
	return v
}

func TestUniformRejectsBiasedTail(t *testing.T) {
	// 0xffffffff falls in the incomplete bucket for n = 10 and is redrawn
	s := &seq{0xffffffff, 0xfffffffa, 13}
	require.Equal(t, uint32(3), Uniform(s, 10))
	require.Empty(t, *s)
}

func TestUniformRange(t *testing.T) {
	for n := uint32(1); n < 20; n++ {
		for i := 0; i < 50; i++ {
			require.Less(t, Uniform(Default, n), n)
		}
	}
}

func TestPermute(t *testing.T) {
	b := []byte("123456789")
	Permute(Default, b)

	sorted := append([]byte(nil), b...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	require.True(t, bytes.Equal(sorted, []byte("123456789")), "not a permutation: %q", b)
}

func TestUniformZeroPanics(t *testing.T) {
	require.Panics(t, func() { Uniform(Default, 0) })
}
