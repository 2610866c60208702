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
	"encoding/binary"
	"fmt"
)

// PinCounter keeps the PIN fail counter word in an RPMB sector. The word is
// stored complemented, so that a sector never written reads as no failed
// attempts.
type PinCounter struct {
	Partition *RPMB
	Sector    uint16
}

func (c *PinCounter) ReadCounter() (uint32, error) {
	buf := make([]byte, dataSize)

	if err := c.Partition.Read(c.Sector, buf); err != nil {
		return 0, fmt.Errorf("failed to read PIN counter sector: %v", err)
	}

	return ^binary.BigEndian.Uint32(buf), nil
}

func (c *PinCounter) WriteCounter(v uint32) error {
	buf := make([]byte, dataSize)
	binary.BigEndian.PutUint32(buf, ^v)

	if err := c.Partition.Write(c.Sector, buf); err != nil {
		return fmt.Errorf("failed to write PIN counter sector: %v", err)
	}

	return nil
}
