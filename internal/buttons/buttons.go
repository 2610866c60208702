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

// Package buttons turns raw Yes/No button levels into per-poll edge and
// hold-duration snapshots.
package buttons

import "math"

// Driver reads the current level of the two device buttons.
type Driver interface {
	// Pressed reports whether the Yes and No buttons are currently held.
	Pressed() (yes bool, no bool)
}

// Snapshot is the button state observed by a single poll.
//
// YesUp and NoUp are release edges. YesDown and NoDown count the polls a
// button has been held for, starting at zero on the poll that first sees
// the press.
type Snapshot struct {
	YesUp   bool
	YesDown uint32
	NoUp    bool
	NoDown  uint32
}

// Sampler tracks button edges across polls.
type Sampler struct {
	drv Driver

	lastYes bool
	lastNo  bool

	state Snapshot
}

// NewSampler returns a Sampler polling drv.
func NewSampler(drv Driver) *Sampler {
	return &Sampler{drv: drv}
}

// Update polls the driver and returns the resulting snapshot.
func (s *Sampler) Update() Snapshot {
	yes, no := s.drv.Pressed()

	s.state.YesUp, s.state.YesDown = step(yes, s.lastYes, s.state.YesDown)
	s.state.NoUp, s.state.NoDown = step(no, s.lastNo, s.state.NoDown)

	s.lastYes = yes
	s.lastNo = no

	return s.state
}

// Released reports whether both buttons were up at the last Update.
func (s *Sampler) Released() bool {
	return !s.lastYes && !s.lastNo
}

// State returns the snapshot produced by the last Update.
func (s *Sampler) State() Snapshot {
	return s.state
}

func step(down bool, wasDown bool, held uint32) (up bool, count uint32) {
	switch {
	case down && wasDown:
		if held < math.MaxInt32 {
			held++
		}
		return false, held
	case !down && wasDown:
		return true, 0
	default:
		return false, 0
	}
}
