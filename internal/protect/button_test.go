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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"
	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/testonly"
)

func TestButton(t *testing.T) {
	for _, test := range []struct {
		name        string
		confirmOnly bool
		presses     [][]testonly.Press
		want        bool
	}{
		{
			name:    "yes",
			presses: [][]testonly.Press{testonly.Idle(3), testonly.TapYes()},
			want:    true,
		}, {
			name:    "no",
			presses: [][]testonly.Press{testonly.Idle(3), testonly.TapNo()},
			want:    false,
		}, {
			name:        "confirm only ignores no",
			confirmOnly: true,
			presses:     [][]testonly.Press{testonly.TapNo(), testonly.TapNo(), testonly.TapYes()},
			want:        true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			drv := &testonly.Buttons{}
			drv.Add(test.presses...)
			f := newFixture(t, drv)

			if got := f.Button(api.ButtonRequest_ProtectCall, test.confirmOnly); got != test.want {
				t.Fatalf("Got %t, want %t", got, test.want)
			}

			want := []api.Message{&api.ButtonRequest{Code: api.ButtonRequest_ProtectCall}}
			if diff := cmp.Diff(want, f.link.Sent, protocmp.Transform()); diff != "" {
				t.Fatalf("Got sent diff: %s", diff)
			}
			if f.channel.Tiny() {
				t.Fatal("Tiny mode left on")
			}
			if f.Aborted() || f.Cancelled() {
				t.Fatal("Flow reported as interrupted")
			}
		})
	}
}

func TestButtonNeverReturnsWithoutYes(t *testing.T) {
	for _, test := range []struct {
		name        string
		noAck       bool
		confirmOnly bool
		presses     [][]testonly.Press
	}{
		{
			name:    "not acknowledged",
			noAck:   true,
			presses: [][]testonly.Press{testonly.TapYes(), testonly.TapNo(), testonly.Chord()},
		}, {
			name:        "no presses in confirm only mode",
			confirmOnly: true,
			presses:     [][]testonly.Press{testonly.TapNo(), testonly.Idle(100), testonly.TapNo()},
		}, {
			name:    "held without release",
			presses: [][]testonly.Press{testonly.Idle(2), {{Yes: true}, {Yes: true}, {Yes: true}}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			drv := &testonly.Buttons{}
			drv.Add(test.presses...)
			f := newFixture(t, drv)
			f.noAck = test.noAck

			err := testonly.Stopped(func() {
				f.Button(api.ButtonRequest_Other, test.confirmOnly)
			})
			if !errors.Is(err, testonly.ErrExhausted) {
				t.Fatalf("Button returned, want it to block")
			}
		})
	}
}

func TestButtonInterrupted(t *testing.T) {
	for _, test := range []struct {
		name        string
		msg         api.Message
		wantAborted bool
	}{
		{
			name: "cancel",
			msg:  &api.Cancel{},
		}, {
			name:        "initialize",
			msg:         &api.Initialize{},
			wantAborted: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			drv := &testonly.Buttons{}
			f := newFixture(t, drv)
			drv.Add(testonly.Idle(3), testonly.Then(func() { f.link.Queue(test.msg) }), testonly.Idle(2))

			if f.Button(api.ButtonRequest_Other, false) {
				t.Fatal("Got true from an interrupted flow")
			}
			if got := f.Aborted(); got != test.wantAborted {
				t.Fatalf("Got aborted %t, want %t", got, test.wantAborted)
			}
			if !f.Cancelled() {
				t.Fatal("Flow not reported as cancelled")
			}

			f.ClearAbort()
			if f.Aborted() {
				t.Fatal("ClearAbort left the flag set")
			}
		})
	}
}

func TestButtonDebugLink(t *testing.T) {
	t.Run("decision", func(t *testing.T) {
		drv := &testonly.Buttons{}
		f := newFixture(t, drv)
		f.DebugLink = debugLink{m: f.matrix}
		drv.Add(testonly.Idle(3), testonly.Then(func() { f.link.Queue(&api.DebugLinkDecision{YesNo: true}) }), testonly.Idle(2))

		if !f.Button(api.ButtonRequest_Other, false) {
			t.Fatal("Scripted decision not honoured")
		}
	})

	t.Run("decision ignored when disabled", func(t *testing.T) {
		drv := &testonly.Buttons{}
		f := newFixture(t, drv)
		drv.Add(testonly.Idle(3), testonly.Then(func() { f.link.Queue(&api.DebugLinkDecision{YesNo: true}) }), testonly.Idle(2))

		err := testonly.Stopped(func() {
			f.Button(api.ButtonRequest_Other, false)
		})
		if !errors.Is(err, testonly.ErrExhausted) {
			t.Fatal("Button returned on a debug decision without a debug link")
		}
	})

	t.Run("state", func(t *testing.T) {
		drv := &testonly.Buttons{}
		f := newFixture(t, drv)
		f.DebugLink = debugLink{m: f.matrix}
		drv.Add(testonly.Idle(3), testonly.Then(func() { f.link.Queue(&api.DebugLinkGetState{}) }), testonly.Idle(2), testonly.TapYes())

		if !f.Button(api.ButtonRequest_Other, false) {
			t.Fatal("Got false, want true")
		}
		want := []api.MessageType{api.MessageType_ButtonRequest, api.MessageType_DebugLinkState}
		if diff := cmp.Diff(want, f.link.Types()); diff != "" {
			t.Fatalf("Got sent diff: %s", diff)
		}
	})
}
