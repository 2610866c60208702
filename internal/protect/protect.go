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

// Package protect implements the flows which obtain consent and secrets
// from the user: button confirmation, PIN entry and change, and on-device
// passphrase entry.
//
// Every flow blocks, polling the host channel and the buttons, until the
// user decides or the host sends Cancel or Initialize. The host channel is
// kept in tiny mode while a flow runs so that only the messages a flow
// understands are accepted.
package protect

import (
	"time"

	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/buttons"
	"github.com/transparency-dev/armored-wallet/internal/rng"
)

const (
	// MaxWrongPins bounds the PIN backoff: once the wait reaches
	// 2^MaxWrongPins seconds the storage is wiped.
	MaxWrongPins = 15
	// MaxPinLength is the longest PIN accepted, in digits.
	MaxPinLength = 16

	pollInterval = 5 * time.Millisecond
)

// Host is the device end of the host connection.
type Host interface {
	// Sleep waits for d while servicing the link.
	Sleep(d time.Duration)
	// SetTiny enters or leaves tiny mode.
	SetTiny(on bool)
	// Take consumes the message waiting in the tiny slot, if any.
	Take() api.Message
	// Send writes a message to the host.
	Send(m api.Message) error
}

// Buttons samples the device buttons.
type Buttons interface {
	Update() buttons.Snapshot
	Released() bool
}

// Layout renders the screens used by the flows.
type Layout interface {
	// Dialog shows lines of text, no and yes label the buttons.
	Dialog(no, yes string, lines ...string)
	// Scroll shows the passphrase picker.
	Scroll(text []byte, labels []string, cursor, screen, padding int)
	CheckPassphrase(text []byte)
	// Caret shows the caret on the next Scroll.
	Caret()
	Swipe()
	SwipeRight()
	Home()
}

// Storage holds the PIN verifier and its fail counter.
type Storage interface {
	HasPin() bool
	PassphraseProtection() bool
	ContainsPin(pin []byte) bool
	SetPin(pin []byte) error
	PinFails() (uint32, error)
	IncreasePinFails(c uint32) bool
	ResetPinFails() error
	Wipe() error
}

// Session caches the outcome of the flows until the host resets it.
type Session interface {
	PinCached() bool
	CachePin()
	PassphraseCached() bool
	CachePassphrase(p []byte)
	Clear()
}

// PinMatrix shows the scrambled keypad and resolves keypad positions.
type PinMatrix interface {
	Start(prompt string)
	Done(pin []byte)
}

// DebugLink exposes device state to a test harness.
type DebugLink interface {
	State() *api.DebugLinkState
}

// Guard runs the flows against its collaborators.
type Guard struct {
	Host    Host
	Buttons Buttons
	Layout  Layout
	Storage Storage
	Session Session
	Matrix  PinMatrix
	RNG     rng.Source

	// DebugLink, when set, enables scripted decisions and state requests.
	DebugLink DebugLink
	// Halt is called once storage has been wiped, it should not return.
	Halt func()

	aborted   bool
	cancelled bool

	passphrase passphraseFlow
}

// Aborted reports whether a flow was interrupted by Initialize since the
// last ClearAbort.
func (g *Guard) Aborted() bool {
	return g.aborted
}

func (g *Guard) ClearAbort() {
	g.aborted = false
}

// Cancelled reports whether the last flow was interrupted by the host.
func (g *Guard) Cancelled() bool {
	return g.cancelled
}

func (g *Guard) begin() {
	g.cancelled = false
}

// interrupted handles a message taken from the tiny slot and reports
// whether it ends the current flow.
func (g *Guard) interrupted(m api.Message) bool {
	switch m.(type) {
	case *api.Initialize:
		klog.V(1).Info("Flow aborted by Initialize")
		g.aborted = true
		g.cancelled = true
		return true
	case *api.Cancel:
		klog.V(1).Info("Flow cancelled")
		g.cancelled = true
		return true
	case *api.DebugLinkGetState:
		g.debugState()
	}
	return false
}

func (g *Guard) debugState() {
	if g.DebugLink == nil {
		return
	}
	_ = g.Host.Send(g.DebugLink.State())
}

func (g *Guard) fail(code api.Failure_FailureType, msg string) {
	_ = g.Host.Send(&api.Failure{Code: code, Message: msg})
}

// tick waits one poll interval and samples the buttons.
func (g *Guard) tick() buttons.Snapshot {
	g.Host.Sleep(pollInterval)
	return g.Buttons.Update()
}

func (g *Guard) halt() {
	if g.Halt != nil {
		g.Halt()
	}
	for {
		time.Sleep(time.Hour)
	}
}
