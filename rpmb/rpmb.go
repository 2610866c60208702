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

// Package rpmb implements Replay Protected Memory Block (RPMB) access on
// eMMCs, and keeps the wallet PIN fail counter in an RPMB sector so that it
// survives replacement or rollback of the main storage.
//
// The API supports mitigations for CVE-2020-13799 as described in the whitepaper linked at:
//
//	https://www.westerndigital.com/support/productsecurity/wdc-20008-replay-attack-vulnerabilities-rpmb-protocol-applications
package rpmb

import (
	"errors"
	"sync"
)

const keyLen = 32

// Card transfers RPMB frames, it is implemented by the TamaGo NXP uSDHC
// driver.
type Card interface {
	// WriteRPMB sends a request frame, reliable selects a reliable write.
	WriteRPMB(buf []byte, reliable bool) error
	// ReadRPMB reads a response frame.
	ReadRPMB(buf []byte) error
}

// RPMB defines a Replay Protected Memory Block partition access instance.
type RPMB struct {
	sync.Mutex

	card Card
	key  [keyLen]byte
}

// Init returns a new RPMB instance for a card and MAC key. The dummyBlock
// argument is an unused sector, when writeDummy is set it is written to
// invalidate uncommitted writes (CVE-2020-13799).
func Init(card Card, key []byte, dummyBlock uint16, writeDummy bool) (*RPMB, error) {
	if card == nil {
		return nil, errors.New("no MMC card set")
	}

	if len(key) != keyLen {
		return nil, errors.New("invalid MAC key size")
	}

	p := &RPMB{card: card}
	copy(p.key[:], key)

	if writeDummy {
		if err := p.Write(dummyBlock, nil); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ProgramKey programs the RPMB partition authentication key.
//
// *WARNING*: this is a one-time irreversible operation for the specific MMC
// card associated to the RPMB partition instance.
func (p *RPMB) ProgramKey() error {
	req := &DataFrame{
		KeyMAC: p.key,
		Req:    AuthenticationKeyProgramming,
	}

	_, err := p.op(req, opts{resultRead: true})

	return err
}

// Counter returns the RPMB partition write counter, auth selects an
// authenticated read.
func (p *RPMB) Counter(auth bool) (uint32, error) {
	req := &DataFrame{
		Req: WriteCounterRead,
	}

	res, err := p.op(req, opts{randomNonce: auth, responseMAC: auth})
	if err != nil {
		return 0, err
	}

	return res.Counter(), nil
}

// Write performs an authenticated data transfer to the card RPMB partition,
// the input buffer can contain up to 256 bytes of data.
//
// The response counter must be a single increment of the request counter,
// otherwise an error is returned (CVE-2020-13799).
func (p *RPMB) Write(offset uint16, buf []byte) error {
	return p.transfer(AuthenticatedDataWrite, offset, buf)
}

// Read performs an authenticated data transfer from the card RPMB partition,
// the input buffer can contain up to 256 bytes of data.
func (p *RPMB) Read(offset uint16, buf []byte) error {
	return p.transfer(AuthenticatedDataRead, offset, buf)
}
