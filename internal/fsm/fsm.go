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

// Package fsm dispatches host messages received in normal mode to their
// handlers, which run the protect flows where the user has to consent.
package fsm

import (
	"context"
	"time"

	"github.com/coreos/go-semver/semver"
	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/protect"
	"github.com/transparency-dev/armored-wallet/internal/storage"
)

const idleInterval = 10 * time.Millisecond

// Host is the dispatcher end of the host connection.
type Host interface {
	Sleep(d time.Duration)
	Next() api.Message
	Send(m api.Message) error
}

// Storage holds the device settings.
type Storage interface {
	Initialized() bool
	Label() string
	SetLabel(label string) error
	HasPin() bool
	SetPin(pin []byte) error
	PassphraseProtection() bool
	SetPassphraseProtection(on bool) error
	Wipe() error
}

// Config identifies the device in Features.
type Config struct {
	Vendor   string
	Version  semver.Version
	DeviceID string
	// Busy, if set, is called with true before a message is handled and
	// with false once it has been answered.
	Busy func(bool)
}

// FSM handles one host message at a time.
type FSM struct {
	host    Host
	guard   *protect.Guard
	storage Storage
	cfg     Config
}

// New returns a dispatcher running the flows of g. Session and layout
// state are shared with g.
func New(h Host, g *protect.Guard, s Storage, cfg Config) *FSM {
	return &FSM{
		host:    h,
		guard:   g,
		storage: s,
		cfg:     cfg,
	}
}

// Run handles queued messages until ctx is done.
func (f *FSM) Run(ctx context.Context) {
	klog.Infof("Wallet %s ready", f.cfg.Version.String())
	f.guard.Layout.Home()

	for ctx.Err() == nil {
		f.host.Sleep(idleInterval)

		for m := f.host.Next(); m != nil; m = f.host.Next() {
			f.Handle(m)
		}
	}
}

// Handle processes a single message received in normal mode.
func (f *FSM) Handle(m api.Message) {
	klog.V(1).Infof("Handling %v", m.Type())

	if f.cfg.Busy != nil {
		f.cfg.Busy(true)
		defer f.cfg.Busy(false)
	}

	switch m := m.(type) {
	case *api.Initialize:
		f.initialize()
	case *api.GetFeatures:
		f.send(f.features())
	case *api.Ping:
		f.ping(m)
	case *api.ChangePin:
		f.changePin(m)
	case *api.WipeDevice:
		f.wipeDevice()
	case *api.ApplySettings:
		f.applySettings(m)
	case *api.ClearSession:
		f.guard.Session.Clear()
		f.success("Session cleared")
	case *api.DebugLinkGetState:
		if f.guard.DebugLink == nil {
			f.fail(api.Failure_UnexpectedMessage, "Unexpected message")
			break
		}
		f.send(f.guard.DebugLink.State())
	case *api.ButtonAck, *api.PinMatrixAck, *api.Cancel, *api.DebugLinkDecision:
		klog.V(1).Infof("Dropping stray %v", m.Type())
	default:
		f.fail(api.Failure_UnexpectedMessage, "Unexpected message")
	}

	if f.guard.Aborted() {
		f.guard.ClearAbort()
		f.initialize()
	}
}

func (f *FSM) send(m api.Message) {
	if err := f.host.Send(m); err != nil {
		klog.Warningf("Failed to answer host: %v", err)
	}
}

func (f *FSM) success(msg string) {
	f.send(&api.Success{Message: msg})
}

// fail answers with a Failure, unless the flow was aborted by Initialize
// which is answered with Features instead.
func (f *FSM) fail(code api.Failure_FailureType, msg string) {
	if f.guard.Aborted() {
		return
	}
	f.send(&api.Failure{Code: code, Message: msg})
}

func (f *FSM) initialize() {
	f.guard.Session.Clear()
	f.guard.Layout.Home()
	f.send(f.features())
}

func (f *FSM) features() *api.Features {
	return &api.Features{
		Vendor:               f.cfg.Vendor,
		MajorVersion:         uint32(f.cfg.Version.Major),
		MinorVersion:         uint32(f.cfg.Version.Minor),
		PatchVersion:         uint32(f.cfg.Version.Patch),
		DeviceId:             f.cfg.DeviceID,
		PinProtection:        f.storage.HasPin(),
		PassphraseProtection: f.storage.PassphraseProtection(),
		Label:                f.storage.Label(),
		Initialized:          f.storage.Initialized(),
		PinCached:            f.guard.Session.PinCached(),
		PassphraseCached:     f.guard.Session.PassphraseCached(),
	}
}

func (f *FSM) ping(m *api.Ping) {
	if m.ButtonProtection {
		f.guard.Layout.Dialog("Cancel", "Confirm", "Do you really want to", "answer to ping?")
		if !f.guard.Button(api.ButtonRequest_ProtectCall, false) {
			f.fail(api.Failure_ActionCancelled, "Ping cancelled")
			f.guard.Layout.Home()
			return
		}
	}

	// the PIN flow answers its own failures
	if m.PinProtection && !f.guard.Pin(true) {
		f.guard.Layout.Home()
		return
	}

	if m.PassphraseProtection && !f.guard.Passphrase() {
		f.fail(api.Failure_ActionCancelled, "Passphrase cancelled")
		f.guard.Layout.Home()
		return
	}

	f.success(m.Message)
	f.guard.Layout.Home()
}

func (f *FSM) changePin(m *api.ChangePin) {
	defer f.guard.Layout.Home()

	switch {
	case m.Remove && !f.storage.HasPin():
		f.success("PIN removed")
		return
	case m.Remove:
		f.guard.Layout.Dialog("Cancel", "Confirm", "Do you really want to", "remove current PIN?")
	case f.storage.HasPin():
		f.guard.Layout.Dialog("Cancel", "Confirm", "Do you really want to", "change current PIN?")
	default:
		f.guard.Layout.Dialog("Cancel", "Confirm", "Do you really want to", "set new PIN?")
	}

	if !f.guard.Button(api.ButtonRequest_ProtectCall, false) {
		f.fail(api.Failure_ActionCancelled, "PIN change cancelled")
		return
	}

	if !f.guard.Pin(false) {
		return
	}

	if m.Remove {
		if err := f.storage.SetPin(nil); err != nil {
			klog.Errorf("Failed to remove PIN: %v", err)
			f.fail(api.Failure_ProcessError, "Storage failure")
			return
		}
		klog.Info("PIN removed")
		f.success("PIN removed")
		return
	}

	if !f.guard.ChangePin() {
		if f.guard.Cancelled() {
			f.fail(api.Failure_ActionCancelled, "PIN change cancelled")
		} else {
			f.fail(api.Failure_PinMismatch, "PIN change failed")
		}
		return
	}

	klog.Info("PIN changed")
	f.success("PIN changed")
}

func (f *FSM) wipeDevice() {
	defer f.guard.Layout.Home()

	f.guard.Layout.Dialog("No", "Yes", "Do you really want to", "wipe the device?", "", "All data will be lost.")
	if !f.guard.Button(api.ButtonRequest_WipeDevice, false) {
		f.fail(api.Failure_ActionCancelled, "Wipe cancelled")
		return
	}

	if err := f.storage.Wipe(); err != nil {
		klog.Errorf("Failed to wipe storage: %v", err)
		f.fail(api.Failure_ProcessError, "Storage failure")
		return
	}
	f.guard.Session.Clear()

	f.success("Device wiped")
}

func (f *FSM) applySettings(m *api.ApplySettings) {
	defer f.guard.Layout.Home()

	if m.Label == "" && m.UsePassphrase == nil {
		f.fail(api.Failure_DataError, "No setting provided")
		return
	}

	if len(m.Label) > storage.MaxLabelLength {
		f.fail(api.Failure_DataError, "Label too long")
		return
	}

	if m.Label != "" {
		f.guard.Layout.Dialog("Cancel", "Confirm", "Do you really want to", "change label to", m.Label+"?")
		if !f.guard.Button(api.ButtonRequest_ProtectCall, false) {
			f.fail(api.Failure_ActionCancelled, "Apply settings cancelled")
			return
		}
	}

	if m.UsePassphrase != nil {
		action := "disable passphrase"
		if *m.UsePassphrase {
			action = "enable passphrase"
		}
		f.guard.Layout.Dialog("Cancel", "Confirm", "Do you really want to", action, "protection?")
		if !f.guard.Button(api.ButtonRequest_ProtectCall, false) {
			f.fail(api.Failure_ActionCancelled, "Apply settings cancelled")
			return
		}
	}

	if !f.guard.Pin(true) {
		return
	}

	if m.Label != "" {
		if err := f.storage.SetLabel(m.Label); err != nil {
			klog.Errorf("Failed to set label: %v", err)
			f.fail(api.Failure_ProcessError, "Storage failure")
			return
		}
	}

	if m.UsePassphrase != nil {
		if err := f.storage.SetPassphraseProtection(*m.UsePassphrase); err != nil {
			klog.Errorf("Failed to set passphrase protection: %v", err)
			f.fail(api.Failure_ProcessError, "Storage failure")
			return
		}
	}

	f.success("Settings applied")
}
