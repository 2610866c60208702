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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const blockSize = 512

// flash emulates the device storage card, each block is a LevelDB entry
// keyed by its big endian LBA. Blocks never written read as zeros.
type flash struct {
	db *leveldb.DB
}

func (f *flash) BlockSize() uint {
	return blockSize
}

func key(lba uint) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(lba))
}

func (f *flash) ReadBlocks(lba uint, b []byte) error {
	if len(b)%blockSize != 0 {
		return fmt.Errorf("read of %d bytes is not block aligned", len(b))
	}

	for i := 0; i < len(b)/blockSize; i++ {
		dst := b[i*blockSize : (i+1)*blockSize]

		v, err := f.db.Get(key(lba+uint(i)), nil)
		switch {
		case errors.Is(err, leveldb.ErrNotFound):
			clear(dst)
		case err != nil:
			return fmt.Errorf("failed to read block %d: %v", lba+uint(i), err)
		default:
			copy(dst, v)
		}
	}

	return nil
}

func (f *flash) WriteBlocks(lba uint, b []byte) (uint, error) {
	if len(b)%blockSize != 0 {
		return 0, fmt.Errorf("write of %d bytes is not block aligned", len(b))
	}

	batch := new(leveldb.Batch)
	for i := 0; i < len(b)/blockSize; i++ {
		batch.Put(key(lba+uint(i)), b[i*blockSize:(i+1)*blockSize])
	}

	if err := f.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return 0, fmt.Errorf("failed to write blocks at %d: %v", lba, err)
	}

	return uint(len(b) / blockSize), nil
}
