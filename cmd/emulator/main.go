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

// The emulator runs the wallet on a development host. The host talks to it
// over UDP, buttons are typed on stdin and screens are printed to stdout.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-semver/semver"
	"github.com/syndtr/goleveldb/leveldb"
	"k8s.io/klog/v2"

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
	configFile = flag.String("config", "", "YAML configuration file.")
	listen     = flag.String("listen", "", "UDP address to listen on, overrides the configuration.")
	flashDir   = flag.String("flash", "", "LevelDB directory backing the storage, overrides the configuration.")
	debugLink  = flag.Bool("debug_link", false, "Enable the debug link.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		klog.Exitf("Failed to load configuration: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *flashDir != "" {
		cfg.Flash = *flashDir
	}
	cfg.DebugLink = cfg.DebugLink || *debugLink

	version, err := semver.NewVersion(Version)
	if err != nil {
		klog.Exitf("Invalid firmware version %q: %v", Version, err)
	}

	klog.Infof("Armored wallet emulator %s (%s) %s", version, Revision, Build)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := leveldb.OpenFile(cfg.Flash, nil)
	if err != nil {
		klog.Exitf("Failed to open flash %q: %v", cfg.Flash, err)
	}
	defer db.Close()

	store, err := storage.Open(&flash{db: db}, storage.Options{Iterations: cfg.PinIterations})
	if err != nil {
		klog.Exitf("Failed to open storage: %v", err)
	}

	if cfg.Label != "" && !store.Initialized() {
		if err := store.SetLabel(cfg.Label); err != nil {
			klog.Exitf("Failed to set label: %v", err)
		}
	}

	link, err := listenUDP(cfg.Listen)
	if err != nil {
		klog.Exitf("Failed to listen on %q: %v", cfg.Listen, err)
	}
	go link.serve(ctx)

	klog.Infof("Listening on %v", link.conn.LocalAddr())

	kbd := &keyboard{}
	go kbd.read(os.Stdin)

	screen := display.New(os.Stdout)
	matrix := pinmatrix.New(rng.Default, screen)

	channel := host.New(link, nil)

	g := &protect.Guard{
		Host:    channel,
		Buttons: buttons.NewSampler(kbd),
		Layout:  screen,
		Storage: store,
		Session: &session.Session{},
		Matrix:  matrix,
		RNG:     rng.Default,
		Halt: func() {
			klog.Error("Device halted")
			klog.Flush()
			os.Exit(1)
		},
	}

	if cfg.DebugLink {
		klog.Warning("Debug link enabled")
		g.DebugLink = &fsm.Debug{Screen: screen, Matrix: matrix, Storage: store}
	}

	f := fsm.New(channel, g, store, fsm.Config{
		Vendor:   "armored-wallet",
		Version:  *version,
		DeviceID: cfg.DeviceID,
	})

	f.Run(ctx)

	klog.Info("Emulator stopped")
}
