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

//go:build tamago && tamper
// +build tamago,tamper

package main

import (
	"runtime"

	"github.com/usbarmory/tamago/soc/nxp/caam"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
	"github.com/usbarmory/tamago/soc/nxp/snvs"
	"k8s.io/klog/v2"
)

// enableTamperDetection makes any SNVS security violation a hard fail, which
// zeroises the keys protecting the RPMB PIN counter.
func enableTamperDetection() {
	imx6ul.SNVS.SetPolicy(snvs.SecurityPolicy{
		Clock:             true,
		Temperature:       true,
		Voltage:           true,
		SecurityViolation: true,
		HardFail:          true,
	})
}

// enableTextRTIC has the CAAM run time integrity checker watch the firmware
// text segment.
func enableTextRTIC() error {
	textStart, textEnd := runtime.TextRegion()

	return imx6ul.CAAM.EnableRTIC([]caam.MemoryBlock{
		{
			Address: textStart,
			Length:  textEnd - textStart,
		},
	})
}

func init() {
	if imx6ul.Native && imx6ul.SNVS.Available() {
		enableTamperDetection()
		klog.Info("SNVS tamper detection enabled")
	}

	if imx6ul.CAAM != nil {
		if err := enableTextRTIC(); err != nil {
			klog.Warningf("Failed to enable RTIC: %v", err)
		}
	}
}
