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

package testonly

import (
	"fmt"
	"testing"
)

// MemBlockSize is the number of bytes in a single memory block.
const MemBlockSize = 512

// MemDev is a simple in-memory block device.
type MemDev struct {
	Storage [][MemBlockSize]byte

	// FailWrites, if set, makes every write fail.
	FailWrites bool
	// Writes counts the blocks written.
	Writes int
}

// BlockSize returns the block size of the underlying storage system.
func (md *MemDev) BlockSize() uint {
	return MemBlockSize
}

// ReadBlocks reads len(b) bytes into b from contiguous storage blocks starting
// at the given block address, b must be a multiple of the block size.
func (md *MemDev) ReadBlocks(lba uint, b []byte) error {
	if lba >= uint(len(md.Storage)) {
		return fmt.Errorf("lba (%d) >= device blocks (%d)", lba, len(md.Storage))
	}
	bl := uint(len(b)) / MemBlockSize
	if l := uint(len(md.Storage)); lba+bl > l {
		bl = l - lba
	}
	for i := uint(0); i < bl; i++ {
		copy(b[i*MemBlockSize:], md.Storage[lba+i][:])
	}
	return nil
}

// WriteBlocks writes b to contiguous storage blocks starting at the given
// block address, short data is zero padded to a whole block.
//
// Returns the number of blocks written, or an error.
func (md *MemDev) WriteBlocks(lba uint, b []byte) (uint, error) {
	if md.FailWrites {
		return 0, fmt.Errorf("write to lba %d refused", lba)
	}
	if lba >= uint(len(md.Storage)) {
		return 0, fmt.Errorf("lba (%d) >= device blocks (%d)", lba, len(md.Storage))
	}
	if r := len(b) % MemBlockSize; r != 0 {
		b = append(b, make([]byte, MemBlockSize-r)...)
	}
	bl := uint(len(b)) / MemBlockSize
	if l := uint(len(md.Storage)); lba+bl > l {
		bl = l - lba
	}
	for i := uint(0); i < bl; i++ {
		copy(md.Storage[lba+i][:], b[i*MemBlockSize:])
		md.Writes++
	}
	return bl, nil
}

// NewMemDev creates a new in-memory block device.
func NewMemDev(t *testing.T, numBlocks uint) *MemDev {
	t.Helper()
	return &MemDev{Storage: make([][MemBlockSize]byte, numBlocks)}
}

// Counter is an in-memory PIN fail counter.
type Counter struct {
	Value uint32
	// Stuck, if set, makes writes succeed without changing Value.
	Stuck bool
}

// NewCounter returns a counter in its erased state.
func NewCounter() *Counter {
	return &Counter{Value: 0xffffffff}
}

func (c *Counter) ReadCounter() (uint32, error) {
	return c.Value, nil
}

func (c *Counter) WriteCounter(v uint32) error {
	if !c.Stuck {
		c.Value = v
	}
	return nil
}
