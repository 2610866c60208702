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
	"github.com/usbarmory/tamago/soc/nxp/usb"
	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/internal/host"
)

// controlInterface serves the U2FHID vendor commands.
type controlInterface struct {
	mailbox *host.Mailbox
	// encoded Features without the settings, served without involving
	// the dispatcher
	info []byte
}

func (ctl *controlInterface) HandleMessage(_ []byte) (_ []byte) {
	return
}

// Wallet delivers the reports carried by req and returns those waiting for
// the host.
func (ctl *controlInterface) Wallet(req []byte) (res []byte) {
	return ctl.mailbox.Exchange(req)
}

// Info returns the device identity.
func (ctl *controlInterface) Info(_ []byte) (res []byte) {
	return ctl.info
}

func (ctl *controlInterface) Start(serial string) {
	device := &usb.Device{}

	if err := configureDevice(device, serial); err != nil {
		klog.Exitf("Failed to configure USB device: %v", err)
	}

	if err := configureHID(device, ctl); err != nil {
		klog.Exitf("Failed to configure U2FHID: %v", err)
	}

	if err := configureUART(device); err != nil {
		klog.Exitf("Failed to configure USB serial: %v", err)
	}

	if Control == nil {
		return
	}

	Control.Init()
	Control.DeviceMode()
	Control.Reset()

	// never returns
	go Control.Start(device)
}
