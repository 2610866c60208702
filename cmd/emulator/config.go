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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the emulated device.
type Config struct {
	// Listen is the UDP address the host connects to.
	Listen string `yaml:"listen"`
	// Flash is the LevelDB directory backing the device storage.
	Flash string `yaml:"flash"`
	// Label is stored on first boot when the device has no label.
	Label string `yaml:"label"`
	// DebugLink enables scripted decisions and state requests.
	DebugLink bool `yaml:"debug_link"`
	// PinIterations overrides the PBKDF2 iteration count.
	PinIterations int `yaml:"pin_iterations"`
	// DeviceID is reported in Features.
	DeviceID string `yaml:"device_id"`
}

func defaultConfig() *Config {
	return &Config{
		Listen:   "127.0.0.1:21324",
		Flash:    "wallet.db",
		DeviceID: "EMULATOR",
	}
}

// loadConfig reads a YAML configuration over the defaults, an empty path
// selects the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	if cfg.PinIterations < 0 {
		return nil, fmt.Errorf("invalid pin_iterations %d", cfg.PinIterations)
	}

	return cfg, nil
}
