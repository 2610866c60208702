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
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/testonly"
)

func TestMailboxExchange(t *testing.T) {
	mb := &Mailbox{}
	c := New(mb, &testonly.Clock{})

	reports, err := api.Encode(&api.Ping{Message: "hello"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var req []byte
	for _, r := range reports {
		req = append(req, r...)
	}

	if res := mb.Exchange(req); len(res) != 0 {
		t.Fatalf("Got %d bytes before the device answered", len(res))
	}

	c.Poll()
	m := c.Next()
	if diff := cmp.Diff(&api.Ping{Message: "hello"}, m, protocmp.Transform()); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}

	if err := c.Send(&api.Success{Message: "hello"}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	res := mb.Exchange(nil)
	if len(res)%api.ReportSize != 0 {
		t.Fatalf("Got %d bytes, want whole reports", len(res))
	}

	r := &api.Reassembler{}
	var got api.Message
	for len(res) > 0 {
		var err error
		if got, err = r.Write(res[:api.ReportSize]); err != nil {
			t.Fatalf("Write: %v", err)
		}
		res = res[api.ReportSize:]
	}
	if diff := cmp.Diff(&api.Success{Message: "hello"}, got, protocmp.Transform()); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}

	if res := mb.Exchange(nil); len(res) != 0 {
		t.Fatalf("Got %d bytes after reports were collected", len(res))
	}
}

func TestMailboxShortReport(t *testing.T) {
	mb := &Mailbox{}
	mb.Push([]byte{'?'})

	r, ok := mb.Receive()
	if !ok {
		t.Fatal("No report received")
	}
	if want := append([]byte{'?'}, make([]byte, api.ReportSize-1)...); !bytes.Equal(r, want) {
		t.Fatalf("Got %x, want zero padded report", r)
	}
}

func TestMailboxLimits(t *testing.T) {
	mb := &Mailbox{Limit: 2}
	report := make([]byte, api.ReportSize)

	for i := 0; i < 2; i++ {
		if err := mb.Transmit(report); err != nil {
			t.Fatalf("Transmit(%d): %v", i, err)
		}
	}
	if err := mb.Transmit(report); !errors.Is(err, ErrMailboxFull) {
		t.Fatalf("Got %v, want ErrMailboxFull", err)
	}

	if got := len(mb.Pull(1)); got != 1 {
		t.Fatalf("Pulled %d reports, want 1", got)
	}
	if err := mb.Transmit(report); err != nil {
		t.Fatalf("Transmit after Pull: %v", err)
	}
}
