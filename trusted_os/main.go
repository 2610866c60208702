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
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/coreos/go-semver/semver"
	"k8s.io/klog/v2"

	usbarmory "github.com/usbarmory/tamago/board/usbarmory/mk2"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/buttons"
	"github.com/transparency-dev/armored-wallet/internal/display"
	"github.com/transparency-dev/armored-wallet/internal/fsm"
	"github.com/transparency-dev/armored-wallet/internal/host"
	"github.com/transparency-dev/armored-wallet/internal/pinmatrix"
	"github.com/transparency-dev/armored-wallet/internal/protect"
	"github.com/transparency-dev/armored-wallet/internal/rng"
	"github.com/transparency-dev/armored-wallet/internal/session"
	"github.com/transparency-dev/armored-wallet/internal/storage"
)

// initialized at link time with -ldflags "-X main.Version=..."
var (
	Build    string
	Revision string
	Version  = "0.0.0-dev"
)

var (
	Storage = usbarmory.MMC
	Control = usbarmory.USB1
)

const vendor = "armored-wallet"

func init() {
	if imx6ul.Native {
		imx6ul.SetARMFreq(imx6ul.Freq792)
		imx6ul.DCP.Init()
	}

	klog.Infof("%s/%s (%s) • armored wallet • %s %s",
		runtime.GOOS, runtime.GOARCH, runtime.Version(),
		Revision, Build)
}

// halt leaves the device unusable until power cycled.
func halt() {
	klog.Error("Device halted")
	usbarmory.LED("blue", true)
	usbarmory.LED("white", true)
	select {}
}

func main() {
	usbarmory.LED("blue", false)
	usbarmory.LED("white", false)

	version, err := semver.NewVersion(Version)
	if err != nil {
		klog.Exitf("Invalid firmware version %q: %v", Version, err)
	}

	serial := fmt.Sprintf("%X", imx6ul.UniqueID())

	dev, counter := openStorage()

	store, err := storage.Open(dev, storage.Options{Counter: counter})
	if err != nil {
		klog.Exitf("Failed to open storage: %v", err)
	}

	info := &api.Features{
		Vendor:       vendor,
		MajorVersion: uint32(version.Major),
		MinorVersion: uint32(version.Minor),
		PatchVersion: uint32(version.Patch),
		DeviceId:     serial,
	}

	infoBytes, err := api.Marshal(info)
	if err != nil {
		klog.Exitf("Failed to encode device information: %v", err)
	}

	mailbox := &host.Mailbox{}

	ctl := &controlInterface{
		mailbox: mailbox,
		info:    infoBytes,
	}
	ctl.Start(serial)

	screen := display.New(os.Stdout)
	matrix := pinmatrix.New(rng.Default, screen)
	channel := host.New(mailbox, nil)

	g := &protect.Guard{
		Host:    channel,
		Buttons: buttons.NewSampler(newButtons()),
		Layout:  screen,
		Storage: store,
		Session: &session.Session{},
		Matrix:  matrix,
		RNG:     rng.Default,
		Halt:    halt,
	}

	if debugLink {
		klog.Warning("Debug link enabled")
		g.DebugLink = &fsm.Debug{Screen: screen, Matrix: matrix, Storage: store}
	}

	usbarmory.LED("white", true)

	fsm.New(channel, g, store, fsm.Config{
		Vendor:   vendor,
		Version:  *version,
		DeviceID: serial,
		Busy: func(busy bool) {
			usbarmory.LED("blue", busy)
		},
	}).Run(context.Background())
}
