// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && !debug
// +build tamago,!debug

package main

import (
	"io"
	"log"
	_ "unsafe"

	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
	"github.com/usbarmory/tamago/soc/nxp/usb"
	"k8s.io/klog/v2"
)

// Release builds never answer DebugLink requests.
const debugLink = false

// The wallet shows the passphrase and PIN keypad on the console, which on
// release builds is the device screen driver only. The serial console is
// silenced to avoid any of that, or runtime stack traces, leaking.
//
// The TamaGo board support for the USB armory Mk II enables UART2 before
// init(), so the runtime printk function is overridden with a NOP and UART2
// is disabled at the first opportunity.

func init() {
	imx6ul.UART2.Disable()

	log.SetOutput(io.Discard)
	klog.LogToStderr(false)
	klog.SetOutput(io.Discard)
}

//go:linkname printk runtime.printk
func printk(c byte) {
	// ensure that any serial output is supressed before UART2 disabling
}

func configureUART(_ *usb.Device) error {
	return nil
}
