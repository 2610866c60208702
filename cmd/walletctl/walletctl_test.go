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
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/transparency-dev/armored-wallet/api"
)

// fakeDevice answers every complete message with the replies of handle.
type fakeDevice struct {
	r      api.Reassembler
	handle func(m api.Message) []api.Message
	got    []api.Message
	idle   int
}

func (d *fakeDevice) exchange(reports [][]byte) ([][]byte, error) {
	if len(reports) == 0 {
		if d.idle++; d.idle > 100 {
			return nil, errors.New("device idle")
		}
	}

	var out [][]byte
	for _, r := range reports {
		m, err := d.r.Write(r)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		d.got = append(d.got, m)
		for _, a := range d.handle(m) {
			reports, err := api.Encode(a)
			if err != nil {
				return nil, err
			}
			out = append(out, reports...)
		}
	}

	return out, nil
}

func (d *fakeDevice) Close() error { return nil }

func TestCallAnswersInteraction(t *testing.T) {
	dev := &fakeDevice{
		handle: func(m api.Message) []api.Message {
			switch m := m.(type) {
			case *api.ChangePin:
				return []api.Message{&api.ButtonRequest{Code: api.ButtonRequest_ProtectCall}}
			case *api.ButtonAck:
				return []api.Message{&api.PinMatrixRequest{Kind: api.PinMatrixRequest_NewFirst}}
			case *api.PinMatrixAck:
				if string(m.Pin) != "159" {
					return []api.Message{&api.Failure{Code: api.Failure_PinInvalid, Message: "PIN invalid"}}
				}
				return []api.Message{&api.Success{Message: "PIN changed"}}
			}
			return nil
		},
	}

	c := newClient(dev, strings.NewReader("159\n"))

	s, err := expect[*api.Success](context.Background(), c, &api.ChangePin{})
	require.NoError(t, err)
	require.Equal(t, "PIN changed", s.Message)

	want := []api.Message{&api.ChangePin{}, &api.ButtonAck{}, &api.PinMatrixAck{Pin: []byte("159")}}
	if diff := cmp.Diff(want, dev.got, protocmp.Transform()); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}
}

func TestCallFailure(t *testing.T) {
	dev := &fakeDevice{
		handle: func(api.Message) []api.Message {
			return []api.Message{&api.Failure{Code: api.Failure_ActionCancelled, Message: "Wipe cancelled"}}
		},
	}

	_, err := expect[*api.Success](context.Background(), newClient(dev, nil), &api.WipeDevice{})
	require.ErrorContains(t, err, "Wipe cancelled")
}

func TestCallWrongReply(t *testing.T) {
	dev := &fakeDevice{
		handle: func(api.Message) []api.Message {
			return []api.Message{&api.Success{}}
		},
	}

	_, err := expect[*api.Features](context.Background(), newClient(dev, nil), &api.GetFeatures{})
	require.ErrorContains(t, err, "unexpected reply")
}

func TestCallCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	dev := &fakeDevice{
		handle: func(m api.Message) []api.Message {
			switch m.(type) {
			case *api.Ping:
				cancel()
			case *api.Cancel:
				return []api.Message{&api.Failure{Code: api.Failure_ActionCancelled, Message: "Ping cancelled"}}
			}
			return nil
		},
	}

	res, err := newClient(dev, nil).call(ctx, &api.Ping{ButtonProtection: true})
	require.NoError(t, err)
	want := &api.Failure{Code: api.Failure_ActionCancelled, Message: "Ping cancelled"}
	require.Empty(t, cmp.Diff(want, res, protocmp.Transform()))
	require.Len(t, dev.got, 2)
}

func TestUDPTransport(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	want := &api.Success{Message: strings.Repeat("x", 100)}
	reply, err := api.Encode(want)
	require.NoError(t, err)
	req, err := api.Encode(&api.GetFeatures{})
	require.NoError(t, err)

	go func() {
		buf := make([]byte, 2*api.ReportSize)
		n, addr, err := pc.ReadFrom(buf)
		if err != nil || n != api.ReportSize {
			return
		}
		for _, r := range reply {
			if _, err := pc.WriteTo(r, addr); err != nil {
				return
			}
		}
	}()

	tr, err := dialUDP(pc.LocalAddr().String())
	require.NoError(t, err)
	defer tr.Close()
	tr.wait = 200 * time.Millisecond

	var in [][]byte
	for i := 0; i < 10 && len(in) < 2; i++ {
		var got [][]byte
		if i == 0 {
			got, err = tr.exchange(req)
		} else {
			got, err = tr.exchange(nil)
		}
		require.NoError(t, err)
		in = append(in, got...)
	}

	r := &api.Reassembler{}
	var m api.Message
	for _, rep := range in {
		m, err = r.Write(rep)
		require.NoError(t, err)
	}
	require.Empty(t, cmp.Diff(want, m, protocmp.Transform()))
}

func TestSplit(t *testing.T) {
	b := make([]byte, 2*api.ReportSize+3)
	require.Len(t, split(b), 2)
	require.Empty(t, split(nil))
}
