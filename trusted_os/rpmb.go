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

//go:build tamago
// +build tamago

package main

import (
	"bytes"
	"crypto/aes"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"k8s.io/klog/v2"

	"github.com/usbarmory/crucible/otp"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
	"github.com/usbarmory/tamago/soc/nxp/usdhc"

	"github.com/transparency-dev/armored-wallet/rpmb"
)

const (
	// RPMB sector for CVE-2020-13799 mitigation
	dummySector = 0
	// RPMB sector holding the PIN fail counter
	pinCounterSector = 1
	// RPMB OTP flag bank
	rpmbFuseBank = 4
	// RPMB OTP flag word
	rpmbFuseWord = 6

	diversifierMAC = "ArmoryWalletMAC"
	iter           = 4096
)

// pinCounter sets up the RPMB partition of card, programming its key on
// first use, and returns the PIN fail counter kept there.
func pinCounter(card *usdhc.USDHC) (*rpmb.PinCounter, error) {
	if !card.Info().MMC {
		return nil, errors.New("RPMB requires an MMC card")
	}

	// derive key for RPMB MAC generation
	dk, err := imx6ul.DCP.DeriveKey([]byte(diversifierMAC), make([]byte, aes.BlockSize), -1)
	if err != nil {
		return nil, fmt.Errorf("could not derive RPMB key (%v)", err)
	}

	uid := imx6ul.UniqueID()

	partition, err := rpmb.Init(
		card,
		pbkdf2.Key(dk, uid[:], iter, sha256.Size, sha256.New),
		dummySector,
		false,
	)
	if err != nil {
		return nil, err
	}

	var e *rpmb.OperationError
	_, err = partition.Counter(false)

	switch {
	case err == nil:
	case errors.As(err, &e) && e.Result == rpmb.AuthenticationKeyNotYetProgrammed:
		if err := programKey(partition); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// invalidate uncommitted writes
	if err := partition.Write(dummySector, nil); err != nil {
		return nil, fmt.Errorf("could not write RPMB dummy sector: %v", err)
	}

	return &rpmb.PinCounter{
		Partition: partition,
		Sector:    pinCounterSector,
	}, nil
}

func programKey(partition *rpmb.RPMB) error {
	// Fuse a bit to indicate previous key programming to prevent malicious
	// eMMC replacement to intercept ProgramKey().
	//
	// If already fused refuse to do any programming and bail.
	if res, err := otp.ReadOCOTP(rpmbFuseBank, rpmbFuseWord, 0, 1); err != nil || bytes.Equal(res, []byte{1}) {
		return fmt.Errorf("could not read RPMB program key flag (%x, %v)", res, err)
	}

	if err := otp.BlowOCOTP(rpmbFuseBank, rpmbFuseWord, 0, 1, []byte{1}); err != nil {
		return fmt.Errorf("could not fuse RPMB program key flag (%v)", err)
	}

	klog.Info("RPMB authentication key not yet programmed, programming")

	if err := partition.ProgramKey(); err != nil {
		return fmt.Errorf("could not program RPMB key: %v", err)
	}

	return nil
}
