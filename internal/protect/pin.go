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

package protect

import (
	"crypto/subtle"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/api"
)

// RequestPin asks the host for keypad positions and returns the PIN they
// resolve to, or nil if the host cancelled. The caller owns the returned
// buffer and must clear it.
func (g *Guard) RequestPin(kind api.PinMatrixRequest_PinMatrixRequestType, prompt string) []byte {
	g.Host.SetTiny(true)
	defer g.Host.SetTiny(false)

	if err := g.Host.Send(&api.PinMatrixRequest{Kind: kind}); err != nil {
		klog.Warningf("Failed to request PIN: %v", err)
		return nil
	}

	g.Matrix.Start(prompt)

	for {
		g.Host.Sleep(pollInterval)

		switch m := g.Host.Take().(type) {
		case *api.PinMatrixAck:
			pin := m.Pin
			if pin == nil {
				pin = []byte{}
			}
			g.Matrix.Done(pin)
			return pin
		default:
			if g.interrupted(m) {
				g.Matrix.Done(nil)
				return nil
			}
		}
	}
}

// Pin verifies the user knows the PIN, unless none is set or useCached is
// set and the PIN was already entered in this session.
//
// Failed attempts impose a wait doubling with every failure, the fail
// counter is advanced before the PIN is checked. Once the wait reaches
// 2^MaxWrongPins seconds the storage is wiped and the device halts.
func (g *Guard) Pin(useCached bool) bool {
	g.begin()

	if !g.Storage.HasPin() || (useCached && g.Session.PinCached()) {
		return true
	}

	fails, err := g.Storage.PinFails()
	if err != nil {
		klog.Errorf("Failed to read PIN fail counter: %v", err)
		g.fail(api.Failure_ProcessError, "Storage failure")
		return false
	}

	g.checkMaxTry(^fails)

	if !g.countdown(^fails) {
		g.fail(api.Failure_PinCancelled, "PIN cancelled")
		return false
	}

	pin := g.RequestPin(api.PinMatrixRequest_Current, "Please enter current PIN:")
	if pin == nil {
		g.fail(api.Failure_PinCancelled, "PIN cancelled")
		return false
	}
	defer clear(pin)

	if !g.Storage.IncreasePinFails(fails) {
		g.fail(api.Failure_PinInvalid, "PIN invalid")
		return false
	}

	if g.Storage.ContainsPin(pin) {
		g.Session.CachePin()
		if err := g.Storage.ResetPinFails(); err != nil {
			klog.Warningf("Failed to reset PIN fail counter: %v", err)
		}
		return true
	}

	klog.Warning("Wrong PIN entered")

	if fails, err = g.Storage.PinFails(); err != nil {
		klog.Errorf("Failed to read PIN fail counter: %v", err)
	} else {
		g.checkMaxTry(^fails)
	}

	g.fail(api.Failure_PinInvalid, "PIN invalid")

	return false
}

// countdown shows the remaining wait, one second at a time. It returns
// false if the host cancelled.
func (g *Guard) countdown(wait uint32) bool {
	if wait == 0 {
		return true
	}

	g.Host.SetTiny(true)
	defer g.Host.SetTiny(false)

	for ; wait > 0; wait-- {
		unit := "seconds"
		if wait == 1 {
			unit = "second"
		}

		g.Layout.Dialog("", "", "Wrong PIN entered", "", "Please wait", fmt.Sprintf("%d %s", wait, unit), "to continue ...")
		g.Host.Sleep(time.Second)

		if g.interrupted(g.Host.Take()) {
			return false
		}
	}

	return true
}

// checkMaxTry wipes the storage and halts when wait has reached the limit.
func (g *Guard) checkMaxTry(wait uint32) {
	if wait < 1<<MaxWrongPins {
		return
	}

	klog.Warning("Too many wrong PIN attempts, wiping storage")

	if err := g.Storage.Wipe(); err != nil {
		klog.Errorf("Failed to wipe storage: %v", err)
	}
	g.Session.Clear()

	g.Layout.Dialog("", "", "Too many wrong PIN", "attempts. Storage has", "been wiped.", "", "Please unplug", "the device.")
	g.halt()
}

// ChangePin asks for a new PIN twice and stores it if both entries match.
// An empty PIN removes PIN protection.
func (g *Guard) ChangePin() bool {
	g.begin()

	var first, second [MaxPinLength]byte
	defer clear(first[:])
	defer clear(second[:])

	n1, ok := g.newPin(api.PinMatrixRequest_NewFirst, "Please enter new PIN:", first[:])
	if !ok {
		return false
	}

	n2, ok := g.newPin(api.PinMatrixRequest_NewSecond, "Please re-enter new PIN:", second[:])
	if !ok {
		return false
	}

	if subtle.ConstantTimeCompare(first[:n1], second[:n2]) != 1 {
		klog.Info("New PIN entries do not match")
		return false
	}

	if err := g.Storage.SetPin(first[:n1]); err != nil {
		klog.Errorf("Failed to store PIN: %v", err)
		return false
	}

	return true
}

// newPin requests a PIN into buf, refusing PINs which are too long or
// contain positions outside the keypad.
func (g *Guard) newPin(kind api.PinMatrixRequest_PinMatrixRequestType, prompt string, buf []byte) (int, bool) {
	pin := g.RequestPin(kind, prompt)
	if pin == nil {
		return 0, false
	}
	defer clear(pin)

	if len(pin) > len(buf) {
		klog.Warningf("Refusing PIN longer than %d digits", len(buf))
		return 0, false
	}

	for _, d := range pin {
		if d < '1' || d > '9' {
			klog.Warning("Refusing PIN with invalid digits")
			return 0, false
		}
	}

	return copy(buf, pin), true
}
