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

//go:build !tamago
// +build !tamago

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/transparency-dev/armored-wallet/api"
)

const pollInterval = 20 * time.Millisecond

var pinPrompts = map[api.PinMatrixRequest_PinMatrixRequestType]string{
	api.PinMatrixRequest_Current:   "current PIN",
	api.PinMatrixRequest_NewFirst:  "new PIN",
	api.PinMatrixRequest_NewSecond: "new PIN again",
}

// client runs a request to completion, answering the interaction requests
// the device sends along the way.
type client struct {
	t  transport
	in *bufio.Reader
	r  api.Reassembler
	// pin, if set, answers PIN requests instead of prompting
	pin func(kind api.PinMatrixRequest_PinMatrixRequestType) ([]byte, error)
}

func newClient(t transport, in io.Reader) *client {
	c := &client{t: t, in: bufio.NewReader(in)}
	c.pin = c.promptPin
	return c
}

// promptPin reads keypad positions, as shown on the device screen, for the
// requested PIN.
func (c *client) promptPin(kind api.PinMatrixRequest_PinMatrixRequestType) ([]byte, error) {
	fmt.Printf("Enter the keypad positions of the %s shown on the device:\n", pinPrompts[kind])
	fmt.Println("  7 8 9\n  4 5 6\n  1 2 3")
	fmt.Print("> ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}

	return []byte(strings.TrimSpace(line)), nil
}

// call sends m and returns the final answer. Cancelling ctx sends Cancel
// to the device, the answer to the cancelled request is still returned.
func (c *client) call(ctx context.Context, m api.Message) (api.Message, error) {
	out, err := api.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %v: %v", m.Type(), err)
	}
	cancelled := false

	for {
		if ctx.Err() != nil && !cancelled {
			log.Print("Cancelling request")
			out = appendEncoded(out, &api.Cancel{})
			cancelled = true
		}

		in, err := c.t.exchange(out)
		if err != nil {
			return nil, fmt.Errorf("exchange failed: %v", err)
		}
		out = nil

		for _, r := range in {
			msg, err := c.r.Write(r)
			if err != nil {
				return nil, fmt.Errorf("invalid reply: %v", err)
			}
			if msg == nil {
				continue
			}

			switch msg := msg.(type) {
			case *api.ButtonRequest:
				log.Print("Confirm on the device")
				out = appendEncoded(out, &api.ButtonAck{})
			case *api.PinMatrixRequest:
				pin, err := c.pin(msg.Kind)
				if err != nil {
					return nil, fmt.Errorf("failed to read PIN: %v", err)
				}
				ack, err := api.Encode(&api.PinMatrixAck{Pin: pin})
				if err != nil {
					return nil, fmt.Errorf("failed to encode PIN: %v", err)
				}
				out = append(out, ack...)
			default:
				return msg, nil
			}
		}

		if len(in) == 0 && len(out) == 0 {
			time.Sleep(pollInterval)
		}
	}
}

// expect calls m and converts a Failure answer, or an answer of the wrong
// type, into an error.
func expect[T api.Message](ctx context.Context, c *client, m api.Message) (T, error) {
	var zero T

	res, err := c.call(ctx, m)
	if err != nil {
		return zero, err
	}

	if f, ok := res.(*api.Failure); ok {
		return zero, fmt.Errorf("device failure %d: %s", f.Code, f.Message)
	}

	r, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected reply %v", res.Type())
	}

	return r, nil
}

// appendEncoded appends the reports of a message that has no string fields
// and so always encodes.
func appendEncoded(out [][]byte, m api.Message) [][]byte {
	r, _ := api.Encode(m)
	return append(out, r...)
}
