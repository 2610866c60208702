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
	_ "unsafe"

	"github.com/usbarmory/tamago/dma"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
)

const (
	// Go runtime
	ramStartAddr = 0x80000000
	ramSizeBytes = 0x10000000 // 256MB

	// USB and uSDHC buffers
	dmaStart = 0x90000000
	dmaSize  = 0x02000000 // 32MB
)

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = ramStartAddr

//go:linkname ramSize runtime.ramSize
var ramSize uint32 = ramSizeBytes

func init() {
	dma.Init(dmaStart, dmaSize)

	// DCP key derivation must not expose the key in external RAM
	deriveKeyMemory, _ := dma.NewRegion(imx6ul.OCRAM_START, imx6ul.OCRAM_SIZE, false)

	switch {
	case imx6ul.CAAM != nil:
		imx6ul.CAAM.DeriveKeyMemory = deriveKeyMemory
	case imx6ul.DCP != nil:
		imx6ul.DCP.DeriveKeyMemory = deriveKeyMemory
	}
}
