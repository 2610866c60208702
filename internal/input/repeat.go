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

// Package input decodes button snapshots into taps, auto-repeats and chord
// confirmations.
package input

import "github.com/transparency-dev/armored-wallet/internal/buttons"

// Event is the high level result of one decoder step.
type Event int

const (
	None Event = iota
	TapYes
	TapNo
	Confirm
)

func (e Event) String() string {
	switch e {
	case TapYes:
		return "TapYes"
	case TapNo:
		return "TapNo"
	case Confirm:
		return "Confirm"
	}
	return "None"
}

// thresholds holds the hold duration, in polls, added before each repeat:
// one slow initial repeat, then faster ones.
var thresholds = [...]uint32{20, 80, 20}

const maxLevel = len(thresholds) - 1

type side struct {
	level     int
	threshold uint32
}

func (s *side) reset() {
	s.level = 0
	s.threshold = thresholds[0]
}

// step returns true when the side produces a tap, either on release after a
// short press or on each repeat while held.
func (s *side) step(up bool, down uint32) bool {
	if up {
		tap := s.level == 0
		s.reset()
		return tap
	}

	if down >= s.threshold {
		if s.level < maxLevel {
			s.level++
		}
		s.threshold += thresholds[s.level]
		return true
	}

	return false
}

// Decoder is the repeat/chord state machine, the zero value is not usable,
// use NewDecoder.
type Decoder struct {
	both bool
	yes  side
	no   side
}

// NewDecoder returns a Decoder in its initial state.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset returns the decoder to its initial state.
func (d *Decoder) Reset() {
	d.both = false
	d.yes.reset()
	d.no.reset()
}

// Step consumes one snapshot.
//
// A chord (both buttons pressed, released, or one of each in the same poll)
// confirms only while neither side is repeating; once confirmed nothing is
// reported until both buttons have been released.
func (d *Decoder) Step(b buttons.Snapshot) Event {
	yesDown := b.YesDown > 0
	noDown := b.NoDown > 0

	if d.both {
		if !yesDown && !noDown {
			d.Reset()
		}
		return None
	}

	if (yesDown || b.YesUp) && (noDown || b.NoUp) {
		if d.yes.level == 0 && d.no.level == 0 {
			d.both = true
			return Confirm
		}
		return None
	}

	yes := d.yes.step(b.YesUp, b.YesDown)
	no := d.no.step(b.NoUp, b.NoDown)

	switch {
	case yes:
		return TapYes
	case no:
		return TapNo
	}

	return None
}
