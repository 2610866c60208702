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
	"sync"

	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/host"
)

// udpLink carries one HID report per datagram. Replies go to the address
// of the last host which sent a report.
type udpLink struct {
	*host.Mailbox

	conn *net.UDPConn

	mu   sync.Mutex
	peer *net.UDPAddr
}

func listenUDP(addr string) (*udpLink, error) {
	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	conn, err := net.ListenUDP("udp", a)
	if err != nil {
		return nil, err
	}

	return &udpLink{
		Mailbox: &host.Mailbox{},
		conn:    conn,
	}, nil
}

// serve receives reports until ctx is done.
func (l *udpLink) serve(ctx context.Context) {
	go func() {
		<-ctx.Done()
		l.conn.Close()
	}()

	buf := make([]byte, 2*api.ReportSize)

	for {
		n, peer, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			klog.Warningf("UDP receive error: %v", err)
			continue
		}

		if n != api.ReportSize {
			klog.Warningf("Dropping %d byte datagram from %v", n, peer)
			continue
		}

		l.mu.Lock()
		if l.peer == nil || l.peer.String() != peer.String() {
			klog.Infof("Host connected from %v", peer)
		}
		l.peer = peer
		l.mu.Unlock()

		l.Push(buf[:n])
	}
}

// Transmit implements host.Link.
func (l *udpLink) Transmit(report []byte) error {
	l.mu.Lock()
	peer := l.peer
	l.mu.Unlock()

	if peer == nil {
		return errors.New("no host connected")
	}

	_, err := l.conn.WriteToUDP(report, peer)

	return err
}
