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

// Package host adapts a report oriented link into the message inbox used by
// the dispatcher and by the user interaction flows.
//
// In normal mode decoded messages queue for the dispatcher. In tiny mode,
// used while a flow blocks on the user, only a small set of messages is
// accepted into a single slot and everything else is refused.
package host

import (
	"errors"
	"time"

	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/api"
)

const (
	// PollInterval is the Clock quantum between link polls within Sleep.
	PollInterval = time.Millisecond

	queueLimit = 16
)

// Link moves HID reports to and from the host.
type Link interface {
	// Receive returns the next pending inbound report without blocking,
	// ok is false when there is none.
	Receive() (report []byte, ok bool)
	// Transmit queues one outbound report.
	Transmit(report []byte) error
}

// Clock abstracts time so that long waits can be simulated.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

var tinyTypes = map[api.MessageType]bool{
	api.MessageType_ButtonAck:         true,
	api.MessageType_Cancel:            true,
	api.MessageType_Initialize:        true,
	api.MessageType_PinMatrixAck:      true,
	api.MessageType_DebugLinkDecision: true,
	api.MessageType_DebugLinkGetState: true,
}

// Channel is the device end of the host connection.
type Channel struct {
	link  Link
	clock Clock

	reassembler api.Reassembler

	tiny  bool
	slot  api.Message
	queue []api.Message
}

// New returns a Channel in normal mode.
func New(link Link, clock Clock) *Channel {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Channel{
		link:  link,
		clock: clock,
	}
}

// Clock returns the clock used by Sleep.
func (c *Channel) Clock() Clock {
	return c.clock
}

// Poll drains every pending inbound report.
func (c *Channel) Poll() {
	for {
		report, ok := c.link.Receive()
		if !ok {
			return
		}

		m, err := c.reassembler.Write(report)

		var de *api.DecodeError

		switch {
		case errors.As(err, &de):
			klog.Warningf("Rejected %v: %v", de.Kind, de.Err)
			c.Fail(api.Failure_DataError, "Could not decode message")
		case err != nil:
			klog.Warningf("Dropped report: %v", err)
		case m != nil:
			c.deliver(m)
		}
	}
}

func (c *Channel) deliver(m api.Message) {
	klog.V(1).Infof("Received %v (tiny=%v)", m.Type(), c.tiny)

	if c.tiny {
		if !tinyTypes[m.Type()] {
			c.Fail(api.Failure_UnexpectedMessage, "Unknown message")
			return
		}
		c.slot = m
		return
	}

	if len(c.queue) >= queueLimit {
		klog.Warningf("Inbox full, dropping %v", m.Type())
		return
	}

	c.queue = append(c.queue, m)
}

// Sleep keeps polling the link until d has elapsed.
func (c *Channel) Sleep(d time.Duration) {
	deadline := c.clock.Now().Add(d)

	for {
		c.Poll()

		if !c.clock.Now().Before(deadline) {
			return
		}

		c.clock.Sleep(PollInterval)
	}
}

// SetTiny switches between normal and tiny mode, the tiny slot is emptied on
// every switch so that a stale acknowledgement never reaches a new flow.
func (c *Channel) SetTiny(on bool) {
	c.tiny = on
	c.slot = nil
}

// Tiny reports whether the channel is in tiny mode.
func (c *Channel) Tiny() bool {
	return c.tiny
}

// Take consumes the message in the tiny slot, if any.
func (c *Channel) Take() api.Message {
	m := c.slot
	c.slot = nil
	return m
}

// Next consumes the oldest message queued in normal mode, if any.
func (c *Channel) Next() api.Message {
	if len(c.queue) == 0 {
		return nil
	}

	m := c.queue[0]
	c.queue[0] = nil
	c.queue = c.queue[1:]

	return m
}

// Send writes a message to the host.
func (c *Channel) Send(m api.Message) error {
	klog.V(1).Infof("Sending %v", m.Type())

	reports, err := api.Encode(m)
	if err != nil {
		klog.Warningf("Failed to encode %v: %v", m.Type(), err)
		return err
	}

	for _, r := range reports {
		if err := c.link.Transmit(r); err != nil {
			klog.Warningf("Failed to send %v: %v", m.Type(), err)
			return err
		}
	}

	return nil
}

// Fail sends a Failure message.
func (c *Channel) Fail(code api.Failure_FailureType, msg string) {
	_ = c.Send(&api.Failure{Code: code, Message: msg})
}
