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
	"testing"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/buttons"
	"github.com/transparency-dev/armored-wallet/internal/host"
	"github.com/transparency-dev/armored-wallet/internal/pinmatrix"
	"github.com/transparency-dev/armored-wallet/internal/session"
	"github.com/transparency-dev/armored-wallet/internal/storage"
	"github.com/transparency-dev/armored-wallet/internal/testonly"
)

// fixture is a device wired to in-memory collaborators. The host
// acknowledges every ButtonRequest unless noAck is set and answers
// PinMatrixRequests from pinReplies.
type fixture struct {
	*Guard

	link    *testonly.Link
	clock   *testonly.Clock
	channel *host.Channel
	layout  *testonly.Layout
	store   *storage.Storage
	counter *testonly.Counter
	session *session.Session
	matrix  *pinmatrix.Matrix

	noAck      bool
	pinReplies []api.Message
}

func newFixture(t *testing.T, drv buttons.Driver) *fixture {
	t.Helper()

	f := &fixture{
		link:    &testonly.Link{},
		clock:   &testonly.Clock{},
		layout:  &testonly.Layout{},
		counter: testonly.NewCounter(),
		session: &session.Session{},
	}

	store, err := storage.Open(testonly.NewMemDev(t, 4), storage.Options{Counter: f.counter, Iterations: 1})
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	f.store = store

	// a source of zeros gives the keypad permutation testonly.Positions
	// expects
	rnd := &testonly.Rand{}
	f.matrix = pinmatrix.New(rnd, nil)
	f.channel = host.New(f.link, f.clock)
	f.link.Reply = f.reply

	f.Guard = &Guard{
		Host:    f.channel,
		Buttons: buttons.NewSampler(drv),
		Layout:  f.layout,
		Storage: f.store,
		Session: f.session,
		Matrix:  f.matrix,
		RNG:     rnd,
		Halt:    testonly.Halt,
	}

	return f
}

func (f *fixture) reply(m api.Message) []api.Message {
	switch m.(type) {
	case *api.ButtonRequest:
		if !f.noAck {
			return []api.Message{&api.ButtonAck{}}
		}
	case *api.PinMatrixRequest:
		if len(f.pinReplies) > 0 {
			r := f.pinReplies[0]
			f.pinReplies = f.pinReplies[1:]
			return []api.Message{r}
		}
	}
	return nil
}

func pinAck(pin string) api.Message {
	return &api.PinMatrixAck{Pin: testonly.Positions(pin)}
}

type debugLink struct {
	m *pinmatrix.Matrix
}

func (d debugLink) State() *api.DebugLinkState {
	return &api.DebugLinkState{Matrix: d.m.Layout()}
}
