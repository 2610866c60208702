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

// Package rng provides uniform random integers on top of a 32-bit source.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"k8s.io/klog/v2"
)

// Source returns uniformly distributed 32-bit integers.
type Source interface {
	Random32() uint32
}

// Reader is a Source drawing from an io.Reader, on tamago crypto/rand is
// backed by the SoC TRNG.
type Reader struct {
	R io.Reader
}

// Default reads from crypto/rand.
var Default Source = Reader{R: rand.Reader}

// Random32 returns 4 bytes from the underlying reader.
func (r Reader) Random32() uint32 {
	var b [4]byte

	if _, err := io.ReadFull(r.R, b[:]); err != nil {
		// no entropy means no safe way to continue
		klog.Fatalf("Failed to read entropy: %v", err)
	}

	return binary.LittleEndian.Uint32(b[:])
}

// Uniform returns a value in [0, n) without modulo bias, n must be
// positive.
func Uniform(s Source, n uint32) uint32 {
	if n == 0 {
		panic("rng: Uniform with n == 0")
	}

	// 2^32 mod n, values from the incomplete final bucket are redrawn
	rem := -n % n

	for {
		if x := s.Random32(); rem == 0 || x < -rem {
			return x % n
		}
	}
}

// Permute shuffles b in place (Fisher-Yates).
func Permute(s Source, b []byte) {
	for i := len(b) - 1; i > 0; i-- {
		j := Uniform(s, uint32(i+1))
		b[i], b[j] = b[j], b[i]
	}
}
