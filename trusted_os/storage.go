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
	"fmt"
	"sync"

	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
	"github.com/usbarmory/tamago/soc/nxp/usdhc"
	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/internal/storage"
)

const (
	// first eMMC block of the wallet area
	walletBlock = 0x4000
	// wallet area length in blocks
	walletBlocks = 16

	expectedBlockSize = 512
)

// Card mostly mirrors the public API of the usdhc.USDHC struct, allowing
// substitutions when running without an eMMC.
type Card interface {
	// Read reads size bytes at offset from the underlying storage.
	Read(offset int64, size int64) ([]byte, error)
	// WriteBlocks writes data at sector lba onwards on the underlying storage.
	WriteBlocks(lba int, data []byte) error
	// Info returns information about the underlying storage.
	Info() usdhc.CardInfo
	// Detect causes the underlying storage to probe itself.
	Detect() error
}

// partition exposes the wallet area of a card as a block device.
type partition struct {
	card Card
}

func (p *partition) BlockSize() uint {
	return expectedBlockSize
}

func (p *partition) check(lba uint, b []byte) error {
	if len(b)%expectedBlockSize != 0 {
		return fmt.Errorf("length %d is not a multiple of the block size", len(b))
	}

	if lba+uint(len(b)/expectedBlockSize) > walletBlocks {
		return fmt.Errorf("blocks %d+%d outside wallet area", lba, len(b)/expectedBlockSize)
	}

	return nil
}

func (p *partition) ReadBlocks(lba uint, b []byte) error {
	if err := p.check(lba, b); err != nil {
		return err
	}

	buf, err := p.card.Read(int64(walletBlock+lba)*expectedBlockSize, int64(len(b)))
	if err != nil {
		return err
	}

	copy(b, buf)

	return nil
}

func (p *partition) WriteBlocks(lba uint, b []byte) (uint, error) {
	if err := p.check(lba, b); err != nil {
		return 0, err
	}

	if err := p.card.WriteBlocks(int(walletBlock+lba), b); err != nil {
		return 0, err
	}

	return uint(len(b) / expectedBlockSize), nil
}

// ramCard is an in-memory card used when the firmware runs emulated.
type ramCard struct {
	mu  sync.Mutex
	mem map[int64][]byte
}

func (c *ramCard) Read(offset int64, size int64) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if offset%expectedBlockSize != 0 {
		return nil, fmt.Errorf("non sector-aligned read at %d", offset)
	}

	r := make([]byte, size)
	base := offset / expectedBlockSize

	for i := int64(0); i*expectedBlockSize < size; i++ {
		copy(r[i*expectedBlockSize:], c.mem[base+i])
	}

	return r, nil
}

func (c *ramCard) WriteBlocks(lba int, b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i*expectedBlockSize < len(b); i++ {
		buf := make([]byte, expectedBlockSize)
		copy(buf, b[i*expectedBlockSize:])
		c.mem[int64(lba+i)] = buf
	}

	return nil
}

func (c *ramCard) Info() usdhc.CardInfo {
	return usdhc.CardInfo{
		MMC:       true,
		BlockSize: expectedBlockSize,
		Blocks:    walletBlock + walletBlocks,
	}
}

func (c *ramCard) Detect() error {
	klog.Warning("Using volatile RAM storage")
	return nil
}

// openStorage returns the wallet area and, on hardware, the RPMB backed PIN
// fail counter.
func openStorage() (storage.BlockReaderWriter, storage.Counter) {
	if !imx6ul.Native {
		card := &ramCard{mem: make(map[int64][]byte)}
		_ = card.Detect()
		return &partition{card: card}, nil
	}

	if err := Storage.Detect(); err != nil {
		klog.Exitf("Failed to detect eMMC: %v", err)
	}

	if bs := Storage.Info().BlockSize; bs != expectedBlockSize {
		klog.Exitf("h/w invariant error - expected MMC blocksize %d, found %d", expectedBlockSize, bs)
	}

	dev := &partition{card: Storage}

	counter, err := pinCounter(Storage)
	if err != nil {
		if imx6ul.SNVS.Available() {
			// secure booted units must not fall back to a counter an
			// attacker can rewind
			klog.Exitf("Failed to set up RPMB PIN counter: %v", err)
		}
		klog.Warningf("RPMB unavailable, PIN fail counter kept in eMMC: %v", err)
		return dev, nil
	}

	return dev, counter
}
