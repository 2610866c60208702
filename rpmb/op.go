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

package rpmb

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"k8s.io/klog/v2"
)

const (
	FrameLength = 512
	// the MAC covers the frame from the data field onwards
	macStart = 228
	dataSize = 256
)

// p99, Table 18 - RPMB Request/Response Message Types, JESD84-B51
const (
	AuthenticationKeyProgramming = iota + 1
	WriteCounterRead
	AuthenticatedDataWrite
	AuthenticatedDataRead
	ResultRead
	AuthenticatedDeviceConfigurationWrite
	AuthenticatedDeviceConfigurationRead
)

// p100, Table 20 - RPMB Operation Results, JESD84-B51
const (
	OperationOK = iota
	GeneralFailure
	AuthenticationFailure
	CounterFailure
	AddressFailure
	WriteFailure
	ReadFailure
	AuthenticationKeyNotYetProgrammed
)

// OperationError carries a result code other than OperationOK.
type OperationError struct {
	Result uint16
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation failed (%x)", e.Result)
}

type opts struct {
	// compute request MAC before sending
	requestMAC bool
	// validate response MAC after receiving
	responseMAC bool
	// set Nonce field with random value
	randomNonce bool
	// get response with a result read request
	resultRead bool
}

// DataFrame is an RPMB frame, p98, Table 17 - Data Frame Files for RPMB,
// JESD84-B51. Multi-byte fields are big endian.
type DataFrame struct {
	StuffBytes   [196]byte
	KeyMAC       [32]byte
	Data         [dataSize]byte
	Nonce        [16]byte
	WriteCounter [4]byte
	Address      [2]byte
	BlockCount   [2]byte
	Result       [2]byte
	Resp         byte
	Req          byte
}

// Counter returns the data frame WriteCounter in uint32 format.
func (d *DataFrame) Counter() uint32 {
	return binary.BigEndian.Uint32(d.WriteCounter[:])
}

// Bytes returns the frame in wire format.
func (d *DataFrame) Bytes() []byte {
	b := make([]byte, 0, FrameLength)

	for _, f := range d.fields() {
		b = append(b, f...)
	}

	return append(b, d.Resp, d.Req)
}

// ParseFrame decodes a frame in wire format.
func ParseFrame(b []byte) (*DataFrame, error) {
	if len(b) != FrameLength {
		return nil, fmt.Errorf("frame length %d, want %d", len(b), FrameLength)
	}

	d := &DataFrame{}

	for _, f := range d.fields() {
		b = b[copy(f, b):]
	}
	d.Resp, d.Req = b[0], b[1]

	return d, nil
}

func (d *DataFrame) fields() [][]byte {
	return [][]byte{
		d.StuffBytes[:],
		d.KeyMAC[:],
		d.Data[:],
		d.Nonce[:],
		d.WriteCounter[:],
		d.Address[:],
		d.BlockCount[:],
		d.Result[:],
	}
}

// MAC returns the HMAC-SHA256 of the authenticated part of frame b.
func MAC(key []byte, b []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(b[macStart:])
	return mac.Sum(nil)
}

func reliable(req byte) bool {
	switch req {
	case AuthenticationKeyProgramming, AuthenticatedDataWrite, AuthenticatedDeviceConfigurationWrite:
		return true
	}
	return false
}

func (p *RPMB) op(req *DataFrame, o opts) (*DataFrame, error) {
	p.Lock()
	defer p.Unlock()

	if p.card == nil {
		return nil, errors.New("RPMB instance not initialized")
	}

	if o.randomNonce {
		if _, err := rand.Read(req.Nonce[:]); err != nil {
			klog.Fatalf("Failed to read entropy: %v", err)
		}
	}

	if o.requestMAC {
		copy(req.KeyMAC[:], MAC(p.key[:], req.Bytes()))
	}

	if err := p.card.WriteRPMB(req.Bytes(), reliable(req.Req)); err != nil {
		return nil, err
	}

	if o.resultRead {
		rr := &DataFrame{Req: ResultRead}
		if err := p.card.WriteRPMB(rr.Bytes(), false); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, FrameLength)
	if err := p.card.ReadRPMB(buf); err != nil {
		return nil, err
	}

	res, err := ParseFrame(buf)
	if err != nil {
		return nil, err
	}

	if o.responseMAC && !hmac.Equal(res.KeyMAC[:], MAC(p.key[:], buf)) {
		return nil, errors.New("invalid response MAC")
	}

	if req.Req != res.Resp {
		return nil, errors.New("request/response type mismatch")
	}

	if req.Nonce != res.Nonce {
		return nil, errors.New("nonce mismatch")
	}

	if r := binary.BigEndian.Uint16(res.Result[:]); r != OperationOK {
		return nil, &OperationError{r}
	}

	return res, nil
}

func (p *RPMB) transfer(kind byte, offset uint16, buf []byte) error {
	if len(buf) > dataSize {
		return fmt.Errorf("transfer size must not exceed %d bytes", dataSize)
	}

	o := opts{
		requestMAC:  true,
		responseMAC: true,
	}

	req := &DataFrame{
		Req: kind,
	}

	if kind == AuthenticatedDataWrite {
		counter, err := p.Counter(true)
		if err != nil {
			return err
		}

		binary.BigEndian.PutUint32(req.WriteCounter[:], counter)
		o.resultRead = true
	} else {
		o.randomNonce = true
	}

	binary.BigEndian.PutUint16(req.BlockCount[:], 1)
	binary.BigEndian.PutUint16(req.Address[:], offset)
	copy(req.Data[:], buf)

	res, err := p.op(req, o)
	if err != nil {
		return err
	}

	if kind == AuthenticatedDataRead {
		copy(buf, res.Data[:])
		return nil
	}

	if res.Counter() != req.Counter()+1 {
		return errors.New("write counter mismatch")
	}

	return nil
}
