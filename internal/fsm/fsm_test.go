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

package fsm

import (
	"context"
	"strings"
	"testing"

	"github.com/coreos/go-semver/semver"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/buttons"
	"github.com/transparency-dev/armored-wallet/internal/display"
	"github.com/transparency-dev/armored-wallet/internal/host"
	"github.com/transparency-dev/armored-wallet/internal/pinmatrix"
	"github.com/transparency-dev/armored-wallet/internal/protect"
	"github.com/transparency-dev/armored-wallet/internal/session"
	"github.com/transparency-dev/armored-wallet/internal/storage"
	"github.com/transparency-dev/armored-wallet/internal/testonly"
)

type fixture struct {
	*FSM

	guard   *protect.Guard
	link    *testonly.Link
	channel *host.Channel
	buttons *testonly.Buttons
	layout  *testonly.Layout
	store   *storage.Storage
	session *session.Session
	matrix  *pinmatrix.Matrix

	pinReplies []api.Message
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		link:    &testonly.Link{},
		buttons: &testonly.Buttons{},
		layout:  &testonly.Layout{},
		session: &session.Session{},
	}

	store, err := storage.Open(testonly.NewMemDev(t, 4), storage.Options{Counter: testonly.NewCounter(), Iterations: 1})
	require.NoError(t, err)
	f.store = store

	rnd := &testonly.Rand{}
	f.matrix = pinmatrix.New(rnd, nil)
	f.channel = host.New(f.link, &testonly.Clock{})
	f.link.Reply = f.reply

	f.guard = &protect.Guard{
		Host:    f.channel,
		Buttons: buttons.NewSampler(f.buttons),
		Layout:  f.layout,
		Storage: f.store,
		Session: f.session,
		Matrix:  f.matrix,
		RNG:     rnd,
		Halt:    testonly.Halt,
	}

	f.FSM = New(f.channel, f.guard, f.store, Config{
		Vendor:   "armored-wallet",
		Version:  *semver.New("1.2.3"),
		DeviceID: "0123456789ABCDEF",
	})

	return f
}

func (f *fixture) reply(m api.Message) []api.Message {
	switch m.(type) {
	case *api.ButtonRequest:
		return []api.Message{&api.ButtonAck{}}
	case *api.PinMatrixRequest:
		if len(f.pinReplies) > 0 {
			r := f.pinReplies[0]
			f.pinReplies = f.pinReplies[1:]
			return []api.Message{r}
		}
	}
	return nil
}

// confirm scripts n confirmations with the Yes button.
func (f *fixture) confirm(n int) {
	for i := 0; i < n; i++ {
		f.buttons.Add(testonly.Idle(2), testonly.TapYes())
	}
}

func pinAck(pin string) api.Message {
	return &api.PinMatrixAck{Pin: testonly.Positions(pin)}
}

func TestFeatures(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.SetLabel("satoshi"))
	require.NoError(t, f.store.SetPin([]byte("1234")))
	f.session.CachePin()

	f.Handle(&api.GetFeatures{})

	want := []api.Message{&api.Features{
		Vendor:        "armored-wallet",
		MajorVersion:  1,
		MinorVersion:  2,
		PatchVersion:  3,
		DeviceId:      "0123456789ABCDEF",
		PinProtection: true,
		Label:         "satoshi",
		Initialized:   true,
		PinCached:     true,
	}}
	if diff := cmp.Diff(want, f.link.Sent, protocmp.Transform()); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}
}

func TestInitializeClearsSession(t *testing.T) {
	f := newFixture(t)
	f.session.CachePin()
	f.session.CachePassphrase([]byte("secret"))

	f.Handle(&api.Initialize{})

	features, ok := f.link.Last().(*api.Features)
	require.True(t, ok, "Got %T, want Features", f.link.Last())
	require.False(t, features.PinCached)
	require.False(t, features.PassphraseCached)
	require.Empty(t, f.session.Passphrase())
}

func TestClearSession(t *testing.T) {
	f := newFixture(t)
	f.session.CachePin()

	f.Handle(&api.ClearSession{})

	require.Empty(t, cmp.Diff(&api.Success{Message: "Session cleared"}, f.link.Last(), protocmp.Transform()))
	require.False(t, f.session.PinCached())
}

func TestPing(t *testing.T) {
	for _, test := range []struct {
		name    string
		msg     *api.Ping
		pin     string
		setup   func(f *fixture)
		want    []api.MessageType
		wantMsg api.Message
	}{
		{
			name:    "plain",
			msg:     &api.Ping{Message: "hello"},
			want:    []api.MessageType{api.MessageType_Success},
			wantMsg: &api.Success{Message: "hello"},
		}, {
			name: "confirmed",
			msg:  &api.Ping{Message: "hello", ButtonProtection: true},
			setup: func(f *fixture) {
				f.confirm(1)
			},
			want:    []api.MessageType{api.MessageType_ButtonRequest, api.MessageType_Success},
			wantMsg: &api.Success{Message: "hello"},
		}, {
			name: "rejected",
			msg:  &api.Ping{Message: "hello", ButtonProtection: true},
			setup: func(f *fixture) {
				f.buttons.Add(testonly.Idle(2), testonly.TapNo())
			},
			want:    []api.MessageType{api.MessageType_ButtonRequest, api.MessageType_Failure},
			wantMsg: &api.Failure{Code: api.Failure_ActionCancelled, Message: "Ping cancelled"},
		}, {
			name: "pin without pin set",
			msg:  &api.Ping{Message: "hello", PinProtection: true},
			want: []api.MessageType{api.MessageType_Success},
		}, {
			name: "correct pin",
			msg:  &api.Ping{Message: "hello", PinProtection: true},
			pin:  "1234",
			setup: func(f *fixture) {
				f.pinReplies = []api.Message{pinAck("1234")}
			},
			want:    []api.MessageType{api.MessageType_PinMatrixRequest, api.MessageType_Success},
			wantMsg: &api.Success{Message: "hello"},
		}, {
			name: "wrong pin",
			msg:  &api.Ping{Message: "hello", PinProtection: true},
			pin:  "1234",
			setup: func(f *fixture) {
				f.pinReplies = []api.Message{pinAck("4321")}
			},
			want:    []api.MessageType{api.MessageType_PinMatrixRequest, api.MessageType_Failure},
			wantMsg: &api.Failure{Code: api.Failure_PinInvalid, Message: "PIN invalid"},
		}, {
			name: "cached pin",
			msg:  &api.Ping{Message: "hello", PinProtection: true},
			pin:  "1234",
			setup: func(f *fixture) {
				f.session.CachePin()
			},
			want: []api.MessageType{api.MessageType_Success},
		}, {
			name: "passphrase not enabled",
			msg:  &api.Ping{Message: "hello", PassphraseProtection: true},
			want: []api.MessageType{api.MessageType_Success},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			if test.pin != "" {
				require.NoError(t, f.store.SetPin([]byte(test.pin)))
			}
			if test.setup != nil {
				test.setup(f)
			}

			f.Handle(test.msg)

			if diff := cmp.Diff(test.want, f.link.Types()); diff != "" {
				t.Fatalf("Got sent types diff: %s", diff)
			}
			if test.wantMsg != nil {
				if diff := cmp.Diff(test.wantMsg, f.link.Last(), protocmp.Transform()); diff != "" {
					t.Fatalf("Got last message diff: %s", diff)
				}
			}
			if f.channel.Tiny() {
				t.Fatal("Tiny mode left on")
			}
		})
	}
}

func TestPingAbortedByInitialize(t *testing.T) {
	f := newFixture(t)
	f.session.CachePin()
	f.buttons.Add(testonly.Idle(2), testonly.Then(func() {
		f.link.Queue(&api.Initialize{})
	}), testonly.Idle(5))

	f.Handle(&api.Ping{Message: "hello", ButtonProtection: true})

	// the cancelled ping is answered with Features only
	want := []api.MessageType{api.MessageType_ButtonRequest, api.MessageType_Features}
	if diff := cmp.Diff(want, f.link.Types()); diff != "" {
		t.Fatalf("Got sent types diff: %s", diff)
	}
	require.False(t, f.guard.Aborted())
	require.False(t, f.session.PinCached())
}

func TestPingCancelled(t *testing.T) {
	f := newFixture(t)
	f.buttons.Add(testonly.Idle(2), testonly.Then(func() {
		f.link.Queue(&api.Cancel{})
	}), testonly.Idle(5))

	f.Handle(&api.Ping{Message: "hello", ButtonProtection: true})

	require.Empty(t, cmp.Diff(&api.Failure{Code: api.Failure_ActionCancelled, Message: "Ping cancelled"}, f.link.Last(), protocmp.Transform()))
}

func TestChangePin(t *testing.T) {
	for _, test := range []struct {
		name       string
		msg        *api.ChangePin
		pin        string
		replies    []api.Message
		confirms   int
		want       api.Message
		wantPin    string
		wantNoPin  bool
		wantDialog string
	}{
		{
			name:       "set new",
			msg:        &api.ChangePin{},
			replies:    []api.Message{pinAck("1234"), pinAck("1234")},
			confirms:   1,
			want:       &api.Success{Message: "PIN changed"},
			wantPin:    "1234",
			wantDialog: "set new PIN?",
		}, {
			name:       "change",
			msg:        &api.ChangePin{},
			pin:        "1111",
			replies:    []api.Message{pinAck("1111"), pinAck("2222"), pinAck("2222")},
			confirms:   1,
			want:       &api.Success{Message: "PIN changed"},
			wantPin:    "2222",
			wantDialog: "change current PIN?",
		}, {
			name:     "mismatch",
			msg:      &api.ChangePin{},
			replies:  []api.Message{pinAck("1234"), pinAck("5678")},
			confirms: 1,
			want:     &api.Failure{Code: api.Failure_PinMismatch, Message: "PIN change failed"},
			// nothing stored
			wantNoPin: true,
		}, {
			name:     "new pin cancelled",
			msg:      &api.ChangePin{},
			replies:  []api.Message{&api.Cancel{}},
			confirms: 1,
			want:     &api.Failure{Code: api.Failure_ActionCancelled, Message: "PIN change cancelled"},
			// nothing stored
			wantNoPin: true,
		}, {
			name:     "current pin wrong",
			msg:      &api.ChangePin{},
			pin:      "1111",
			replies:  []api.Message{pinAck("9999")},
			confirms: 1,
			want:     &api.Failure{Code: api.Failure_PinInvalid, Message: "PIN invalid"},
			wantPin:  "1111",
		}, {
			name:       "remove",
			msg:        &api.ChangePin{Remove: true},
			pin:        "1111",
			replies:    []api.Message{pinAck("1111")},
			confirms:   1,
			want:       &api.Success{Message: "PIN removed"},
			wantNoPin:  true,
			wantDialog: "remove current PIN?",
		}, {
			name:      "remove without pin",
			msg:       &api.ChangePin{Remove: true},
			want:      &api.Success{Message: "PIN removed"},
			wantNoPin: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			if test.pin != "" {
				require.NoError(t, f.store.SetPin([]byte(test.pin)))
			}
			f.pinReplies = test.replies
			f.confirm(test.confirms)

			f.Handle(test.msg)

			if diff := cmp.Diff(test.want, f.link.Last(), protocmp.Transform()); diff != "" {
				t.Fatalf("Got diff: %s", diff)
			}
			if test.wantNoPin {
				require.False(t, f.store.HasPin())
			}
			if test.wantPin != "" {
				require.True(t, f.store.ContainsPin([]byte(test.wantPin)))
			}
			if test.wantDialog != "" && !f.layout.Saw(test.wantDialog) {
				t.Fatalf("Dialog %q not shown, got %q", test.wantDialog, f.layout.Log)
			}
		})
	}
}

func TestWipeDevice(t *testing.T) {
	for _, test := range []struct {
		name      string
		presses   []testonly.Press
		want      api.Message
		wantLabel string
	}{
		{
			name:    "confirmed",
			presses: testonly.TapYes(),
			want:    &api.Success{Message: "Device wiped"},
		}, {
			name:      "rejected",
			presses:   testonly.TapNo(),
			want:      &api.Failure{Code: api.Failure_ActionCancelled, Message: "Wipe cancelled"},
			wantLabel: "satoshi",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.store.SetLabel("satoshi"))
			require.NoError(t, f.store.SetPin([]byte("1234")))
			f.buttons.Add(testonly.Idle(2), test.presses)

			f.Handle(&api.WipeDevice{})

			want := &api.ButtonRequest{Code: api.ButtonRequest_WipeDevice}
			if diff := cmp.Diff(want, f.link.Sent[0], protocmp.Transform()); diff != "" {
				t.Fatalf("Got request diff: %s", diff)
			}
			if diff := cmp.Diff(test.want, f.link.Last(), protocmp.Transform()); diff != "" {
				t.Fatalf("Got diff: %s", diff)
			}
			require.Equal(t, test.wantLabel, f.store.Label())
			require.Equal(t, test.wantLabel != "", f.store.HasPin())
		})
	}
}

func TestApplySettings(t *testing.T) {
	yes := true

	for _, test := range []struct {
		name           string
		msg            *api.ApplySettings
		confirms       int
		want           api.Message
		wantRequests   int
		wantLabel      string
		wantPassphrase bool
	}{
		{
			name:         "label",
			msg:          &api.ApplySettings{Label: "satoshi"},
			confirms:     1,
			want:         &api.Success{Message: "Settings applied"},
			wantRequests: 1,
			wantLabel:    "satoshi",
		}, {
			name:           "label and passphrase",
			msg:            &api.ApplySettings{Label: "satoshi", UsePassphrase: &yes},
			confirms:       2,
			want:           &api.Success{Message: "Settings applied"},
			wantRequests:   2,
			wantLabel:      "satoshi",
			wantPassphrase: true,
		}, {
			name: "nothing to apply",
			msg:  &api.ApplySettings{},
			want: &api.Failure{Code: api.Failure_DataError, Message: "No setting provided"},
		}, {
			name: "label too long",
			msg:  &api.ApplySettings{Label: strings.Repeat("x", storage.MaxLabelLength+1)},
			want: &api.Failure{Code: api.Failure_DataError, Message: "Label too long"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.confirm(test.confirms)

			f.Handle(test.msg)

			if diff := cmp.Diff(test.want, f.link.Last(), protocmp.Transform()); diff != "" {
				t.Fatalf("Got diff: %s", diff)
			}
			requests := 0
			for _, m := range f.link.Sent {
				if _, ok := m.(*api.ButtonRequest); ok {
					requests++
				}
			}
			require.Equal(t, test.wantRequests, requests)
			require.Equal(t, test.wantLabel, f.store.Label())
			require.Equal(t, test.wantPassphrase, f.store.PassphraseProtection())
		})
	}
}

func TestApplySettingsRequiresPin(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.SetPin([]byte("1234")))
	f.confirm(1)
	f.pinReplies = []api.Message{pinAck("1111")}

	f.Handle(&api.ApplySettings{Label: "satoshi"})

	require.Empty(t, cmp.Diff(&api.Failure{Code: api.Failure_PinInvalid, Message: "PIN invalid"}, f.link.Last(), protocmp.Transform()))
	require.Empty(t, f.store.Label())
}

func TestStrayAndUnexpected(t *testing.T) {
	for _, test := range []struct {
		name string
		msg  api.Message
		want []api.Message
	}{
		{
			name: "button ack",
			msg:  &api.ButtonAck{},
		}, {
			name: "pin ack",
			msg:  &api.PinMatrixAck{Pin: []byte("123")},
		}, {
			name: "cancel",
			msg:  &api.Cancel{},
		}, {
			name: "decision",
			msg:  &api.DebugLinkDecision{YesNo: true},
		}, {
			name: "device message",
			msg:  &api.Features{},
			want: []api.Message{&api.Failure{Code: api.Failure_UnexpectedMessage, Message: "Unexpected message"}},
		}, {
			name: "unknown",
			msg:  &api.Unknown{Kind: 999},
			want: []api.Message{&api.Failure{Code: api.Failure_UnexpectedMessage, Message: "Unexpected message"}},
		}, {
			name: "debug link disabled",
			msg:  &api.DebugLinkGetState{},
			want: []api.Message{&api.Failure{Code: api.Failure_UnexpectedMessage, Message: "Unexpected message"}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)

			f.Handle(test.msg)

			if diff := cmp.Diff(test.want, f.link.Sent, protocmp.Transform()); diff != "" {
				t.Fatalf("Got diff: %s", diff)
			}
		})
	}
}

func TestDebugLinkState(t *testing.T) {
	f := newFixture(t)
	screen := display.New(nil)
	screen.Home()
	f.guard.DebugLink = &Debug{Screen: screen, Matrix: f.matrix, Storage: f.store}
	require.NoError(t, f.store.SetPassphraseProtection(true))

	f.Handle(&api.DebugLinkGetState{})

	want := &api.DebugLinkState{
		Layout:               []byte(screen.Last()),
		PassphraseProtection: true,
	}
	if diff := cmp.Diff(want, f.link.Last(), protocmp.Transform()); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}
}

func TestRun(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var handled int
	f.cfg.Busy = func(busy bool) {
		if !busy {
			handled++
			if handled == 2 {
				cancel()
			}
		}
	}

	f.link.Queue(&api.Ping{Message: "one"}, &api.Ping{Message: "two"})

	f.Run(ctx)

	want := []api.Message{&api.Success{Message: "one"}, &api.Success{Message: "two"}}
	if diff := cmp.Diff(want, f.link.Sent, protocmp.Transform()); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}
	if !f.layout.Saw("home") {
		t.Fatal("Home screen not shown")
	}
}
