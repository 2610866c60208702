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

import "github.com/transparency-dev/armored-wallet/api"

// Debug builds the DebugLinkState from the device collaborators. The stored
// PIN is never exposed.
type Debug struct {
	Screen interface {
		Last() string
	}
	Matrix interface {
		Layout() string
	}
	Storage interface {
		PassphraseProtection() bool
	}
}

func (d *Debug) State() *api.DebugLinkState {
	return &api.DebugLinkState{
		Layout:               []byte(d.Screen.Last()),
		Matrix:               d.Matrix.Layout(),
		PassphraseProtection: d.Storage.PassphraseProtection(),
	}
}
