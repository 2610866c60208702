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
	"github.com/usbarmory/tamago/soc/nxp/gpio"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/internal/buttons"
)

// GPIO4 pins wired to the confirmation buttons, both active low.
const (
	yesPin = 21
	noPin  = 22
)

type gpioButtons struct {
	yes *gpio.Pin
	no  *gpio.Pin
}

func (b *gpioButtons) Pressed() (yes bool, no bool) {
	return !b.yes.Value(), !b.no.Value()
}

// noButtons never reports a press, leaving confirmation to the debug link.
type noButtons struct{}

func (noButtons) Pressed() (bool, bool) {
	return false, false
}

func newButtons() buttons.Driver {
	if !imx6ul.Native {
		return noButtons{}
	}

	yes, err := imx6ul.GPIO4.Init(yesPin)
	if err != nil {
		klog.Exitf("Failed to configure Yes button: %v", err)
	}

	no, err := imx6ul.GPIO4.Init(noPin)
	if err != nil {
		klog.Exitf("Failed to configure No button: %v", err)
	}

	yes.In()
	no.In()

	return &gpioButtons{yes: yes, no: no}
}
