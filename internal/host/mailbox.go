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

package host

import (
	"errors"
	"sync"

	"github.com/transparency-dev/armored-wallet/api"
)

// ErrMailboxFull is returned by Transmit when the host has not collected
// enough of the reports already sent.
var ErrMailboxFull = errors.New("outbound reports not collected")

// maxReports bounds the reports returned by one Exchange so that they fit a
// single U2FHID response.
const maxReports = api.MaxMessageSize / api.ReportSize

// Mailbox is a Link for transports where the host polls the device. Reports
// pushed by the host are received by the device, reports transmitted by the
// device wait until the host collects them.
type Mailbox struct {
	mu sync.Mutex

	in  [][]byte
	out [][]byte
	// Limit bounds the uncollected outbound reports, zero means
	// 8 * MaxMessageSize worth of reports.
	Limit int
}

// Push queues a report received from the host.
func (m *Mailbox) Push(report []byte) {
	r := make([]byte, api.ReportSize)
	copy(r, report)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.in = append(m.in, r)
}

// Pull removes and returns up to n outbound reports.
func (m *Mailbox) Pull(n int) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > len(m.out) {
		n = len(m.out)
	}

	r := m.out[:n:n]
	m.out = m.out[n:]

	return r
}

// Exchange pushes the reports contained in req and returns the outbound
// reports concatenated, at most one U2FHID message worth.
func (m *Mailbox) Exchange(req []byte) []byte {
	for len(req) > 0 {
		n := min(len(req), api.ReportSize)
		m.Push(req[:n])
		req = req[n:]
	}

	var res []byte
	for _, r := range m.Pull(maxReports) {
		res = append(res, r...)
	}

	return res
}

// Receive implements Link.
func (m *Mailbox) Receive() ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.in) == 0 {
		return nil, false
	}

	r := m.in[0]
	m.in = m.in[1:]

	return r, true
}

// Transmit implements Link.
func (m *Mailbox) Transmit(report []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	limit := m.Limit
	if limit == 0 {
		limit = 8 * maxReports
	}

	if len(m.out) >= limit {
		return ErrMailboxFull
	}

	m.out = append(m.out, append([]byte(nil), report...))

	return nil
}
