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
	"bytes"
	"errors"
	"fmt"
	"net"
	"time"

	flynn_hid "github.com/flynn/hid"
	"github.com/flynn/u2f/u2fhid"

	"github.com/transparency-dev/armored-wallet/api"
)

// transport moves HID reports to the device and returns whatever reports
// the device has queued for the host.
type transport interface {
	exchange(reports [][]byte) ([][]byte, error)
	Close() error
}

func split(b []byte) [][]byte {
	var r [][]byte
	for len(b) >= api.ReportSize {
		r = append(r, b[:api.ReportSize])
		b = b[api.ReportSize:]
	}
	return r
}

// hidTransport tunnels reports in the wallet U2FHID vendor command.
type hidTransport struct {
	dev *u2fhid.Device
}

func detectU2F() (*u2fhid.Device, error) {
	devices, err := flynn_hid.Devices()
	if err != nil {
		return nil, err
	}

	for _, d := range devices {
		if d.UsagePage == api.HIDUsagePage &&
			d.VendorID == api.VendorID &&
			d.ProductID == api.ProductID {
			return u2fhid.Open(d)
		}
	}

	return nil, errors.New("no device found")
}

func (t *hidTransport) exchange(reports [][]byte) ([][]byte, error) {
	res, err := t.dev.Command(api.U2FHID_WALLET_MSG, bytes.Join(reports, nil))
	if err != nil {
		return nil, err
	}
	return split(res), nil
}

func (t *hidTransport) Close() error {
	t.dev.Close()
	return nil
}

// udpTransport talks to the emulator, one report per datagram.
type udpTransport struct {
	conn net.Conn
	// wait is how long exchange waits for the first reply
	wait time.Duration
}

func dialUDP(addr string) (*udpTransport, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}
	return &udpTransport{conn: conn, wait: 50 * time.Millisecond}, nil
}

func (t *udpTransport) exchange(reports [][]byte) ([][]byte, error) {
	for _, r := range reports {
		if _, err := t.conn.Write(r); err != nil {
			return nil, err
		}
	}

	var res [][]byte
	buf := make([]byte, 2*api.ReportSize)

	for {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.wait)); err != nil {
			return nil, err
		}

		n, err := t.conn.Read(buf)
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return res, nil
		}
		if err != nil {
			return nil, err
		}

		if n != api.ReportSize {
			return nil, fmt.Errorf("got %d byte datagram", n)
		}
		res = append(res, append([]byte(nil), buf[:n]...))
	}
}

func (t *udpTransport) Close() error {
	return t.conn.Close()
}
