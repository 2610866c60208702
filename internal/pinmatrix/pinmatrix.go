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

// Package pinmatrix implements the scrambled keypad used for PIN entry.
//
// The host shows a 3x3 grid of blank keys and reports the positions the
// user clicked, counted from 1 at the bottom left as on a numeric keypad.
// Only the device, which shows the digits on its display, knows which digit
// sits at each position.
package pinmatrix

import (
	"github.com/transparency-dev/armored-wallet/internal/rng"
)

const digits = "123456789"

// Display shows the keypad next to a prompt.
type Display interface {
	Matrix(prompt string, grid [3][3]byte)
}

// Matrix holds the permutation for one PIN request.
type Matrix struct {
	rnd     rng.Source
	display Display

	perm   [9]byte
	active bool
}

// New returns a keypad drawing on d, shuffled with r.
func New(r rng.Source, d Display) *Matrix {
	return &Matrix{rnd: r, display: d}
}

// Start shuffles the keypad and shows it.
func (m *Matrix) Start(prompt string) {
	copy(m.perm[:], digits)
	rng.Permute(m.rnd, m.perm[:])
	m.active = true

	if m.display != nil {
		m.display.Matrix(prompt, m.grid())
	}
}

// grid returns the keypad rows top first, position 7 is the top left key.
func (m *Matrix) grid() [3][3]byte {
	var g [3][3]byte
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			g[row][col] = m.perm[(2-row)*3+col]
		}
	}
	return g
}

// Done translates the positions in pin into digits in place and forgets
// the permutation. Positions outside 1-9 become 'X', which never matches a
// stored PIN. A nil pin only clears the keypad.
func (m *Matrix) Done(pin []byte) {
	for i, k := range pin {
		if k >= '1' && k <= '9' && m.active {
			pin[i] = m.perm[k-'1']
		} else {
			pin[i] = 'X'
		}
	}

	clear(m.perm[:])
	m.active = false
}

// Layout returns the current permutation for the debug link, empty when no
// PIN is being requested.
func (m *Matrix) Layout() string {
	if !m.active {
		return ""
	}
	return string(m.perm[:])
}
