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

// Press is the button level returned by one poll of a scripted driver. Do,
// if set, runs before the level is reported.
type Press struct {
	Yes, No bool
	Do      func()
}

// Buttons is a scripted buttons.Driver.
type Buttons struct {
	Steps []Press
	// Polls counts the calls to Pressed.
	Polls int
}

// Add appends steps to the script.
func (b *Buttons) Add(parts ...[]Press) {
	for _, p := range parts {
		b.Steps = append(b.Steps, p...)
	}
}

// Pressed implements buttons.Driver.
func (b *Buttons) Pressed() (bool, bool) {
	if len(b.Steps) == 0 {
		panic(ErrExhausted)
	}

	s := b.Steps[0]
	b.Steps = b.Steps[1:]
	b.Polls++

	if s.Do != nil {
		s.Do()
	}

	return s.Yes, s.No
}

// Idle returns n polls with both buttons released.
func Idle(n int) []Press {
	return make([]Press, n)
}

// TapYes is a short press of the Yes button.
func TapYes() []Press {
	return []Press{{}, {Yes: true}, {}}
}

// TapNo is a short press of the No button.
func TapNo() []Press {
	return []Press{{}, {No: true}, {}}
}

// Chord is a short press of both buttons.
func Chord() []Press {
	return []Press{{}, {Yes: true, No: true}, {Yes: true, No: true}, {}}
}

// HeldChord holds both buttons for n polls, then releases them.
func HeldChord(n int) []Press {
	r := []Press{{}}
	for i := 0; i < n; i++ {
		r = append(r, Press{Yes: true, No: true})
	}
	return append(r, Press{})
}

// Then returns a released poll running f.
func Then(f func()) []Press {
	return []Press{{Do: f}}
}
