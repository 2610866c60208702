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

// Package session holds the volatile per-connection state: whether the PIN
// has been entered and the cached passphrase.
package session

import "k8s.io/klog/v2"

// MaxPassphraseLength is the longest passphrase accepted, in bytes.
const MaxPassphraseLength = 50

// Session is cleared on power cycle and on host Initialize.
type Session struct {
	pinCached        bool
	passphraseCached bool

	passphrase [MaxPassphraseLength + 1]byte
	n          int
}

func (s *Session) PinCached() bool {
	return s.pinCached
}

func (s *Session) CachePin() {
	s.pinCached = true
}

func (s *Session) PassphraseCached() bool {
	return s.passphraseCached
}

// CachePassphrase keeps a copy of p, truncated to MaxPassphraseLength.
func (s *Session) CachePassphrase(p []byte) {
	clear(s.passphrase[:])
	s.n = copy(s.passphrase[:MaxPassphraseLength], p)
	s.passphraseCached = true
}

// Passphrase returns the cached passphrase, the slice aliases the session
// and is wiped by Clear.
func (s *Session) Passphrase() []byte {
	return s.passphrase[:s.n]
}

// Clear forgets the cached PIN state and passphrase.
func (s *Session) Clear() {
	klog.V(1).Info("Clearing session")
	clear(s.passphrase[:])
	s.n = 0
	s.pinCached = false
	s.passphraseCached = false
}
