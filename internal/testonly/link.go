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

// Package testonly provides fakes for the device collaborators.
//
// Fakes that drive a blocking flow panic with ErrExhausted once their script
// runs out, so tests can assert that a flow never returns.
package testonly

import (
	"errors"
	"time"

	"github.com/transparency-dev/armored-wallet/api"
)

var (
	// ErrExhausted is raised as a panic when a scripted fake runs dry.
	ErrExhausted = errors.New("script exhausted")
	// ErrHalted is raised as a panic by Halt.
	ErrHalted = errors.New("device halted")
)

// Halt can be used as the halt hook of a device under test.
func Halt() {
	panic(ErrHalted)
}

// Stopped runs f and returns the sentinel it panicked with, or nil if it
// returned normally. Any other panic is propagated.
func Stopped(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || !(errors.Is(e, ErrExhausted) || errors.Is(e, ErrHalted)) {
			panic(r)
		}
		err = e
	}()

	f()

	return nil
}

const defaultIdleLimit = 1 << 20

// Link is an in-memory host link.
type Link struct {
	// Reply, if set, is called with every message sent by the device and
	// returns the messages the host answers with.
	Reply func(m api.Message) []api.Message
	// Sent holds every complete message sent by the device.
	Sent []api.Message
	// Err, if set, is returned by Transmit.
	Err error
	// IdleLimit is the number of consecutive empty receives tolerated
	// before panicking with ErrExhausted, zero selects a large default.
	IdleLimit int

	in   [][]byte
	idle int
	r    api.Reassembler
}

// Queue appends messages to the inbound stream.
func (l *Link) Queue(msgs ...api.Message) {
	for _, m := range msgs {
		reports, err := api.Encode(m)
		if err != nil {
			panic(err)
		}
		l.in = append(l.in, reports...)
	}
}

// QueueReports appends raw reports to the inbound stream.
func (l *Link) QueueReports(reports ...[]byte) {
	l.in = append(l.in, reports...)
}

// Receive implements host.Link.
func (l *Link) Receive() ([]byte, bool) {
	if len(l.in) == 0 {
		l.idle++
		limit := l.IdleLimit
		if limit == 0 {
			limit = defaultIdleLimit
		}
		if l.idle > limit {
			panic(ErrExhausted)
		}
		return nil, false
	}

	l.idle = 0
	r := l.in[0]
	l.in = l.in[1:]

	return r, true
}

// Transmit implements host.Link.
func (l *Link) Transmit(report []byte) error {
	if l.Err != nil {
		return l.Err
	}

	m, err := l.r.Write(report)
	if err != nil || m == nil {
		return err
	}

	l.Sent = append(l.Sent, m)

	if l.Reply != nil {
		l.Queue(l.Reply(m)...)
	}

	return nil
}

// Types returns the types of the sent messages, in order.
func (l *Link) Types() []api.MessageType {
	r := make([]api.MessageType, len(l.Sent))
	for i, m := range l.Sent {
		r[i] = m.Type()
	}
	return r
}

// Last returns the last sent message, or nil.
func (l *Link) Last() api.Message {
	if len(l.Sent) == 0 {
		return nil
	}
	return l.Sent[len(l.Sent)-1]
}

// Clock is a manually advanced clock, Sleep returns immediately.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time {
	return c.T
}

func (c *Clock) Sleep(d time.Duration) {
	c.T = c.T.Add(d)
}
