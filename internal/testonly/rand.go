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

package testonly

import (
	"bytes"

	"github.com/transparency-dev/armored-wallet/internal/rng"
)

// Rand is a rng.Source cycling through Values, a zero value always returns 0.
type Rand struct {
	Values []uint32
	i      int
}

func (r *Rand) Random32() uint32 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.i%len(r.Values)]
	r.i++
	return v
}

// Positions returns the keypad positions a host user would click to enter
// pin on a keypad shuffled with a zero value Rand. Digits missing from the
// keypad map to the invalid position '0'.
func Positions(pin string) []byte {
	perm := []byte("123456789")
	rng.Permute(&Rand{}, perm)

	r := make([]byte, len(pin))
	for i := range pin {
		k := bytes.IndexByte(perm, pin[i])
		if k < 0 {
			r[i] = '0'
			continue
		}
		r[i] = byte(k) + '1'
	}
	return r
}
