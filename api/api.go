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

// Package api defines the messages exchanged between a host and the wallet,
// their protobuf wire encoding and the HID report framing used to carry them.
package api

//go:generate protoc --go_out=paths=source_relative:. api.proto

import (
	"bytes"
	"fmt"

	"github.com/gsora/fidati/u2fhid"
)

const (
	// http://pid.codes/1209/53C1/
	VendorID  = 0x1209
	ProductID = 0x53c1

	HIDUsagePage = 0xff00

	// Maximum Message size according to U2F HID standard (see formula in
	// [FIDO U2F // HID Protocol Specification, 2.4]).
	MaxMessageSize = 7609
)

// U2FHID vendor specific commands
const (
	// Wallet reports, in both directions
	U2FHID_WALLET_MSG = iota + u2fhid.VendorCommandFirst
	// Device information
	U2FHID_WALLET_INF
)

// Print returns the device features in textual format.
func (p *Features) Print() string {
	var status bytes.Buffer

	status.WriteString("---------------------------------------------------------------- Wallet ----\n")
	status.WriteString(fmt.Sprintf("Vendor .................: %s\n", p.Vendor))
	status.WriteString(fmt.Sprintf("Version ................: %d.%d.%d\n", p.MajorVersion, p.MinorVersion, p.PatchVersion))
	status.WriteString(fmt.Sprintf("Device ID ..............: %s\n", p.DeviceId))
	status.WriteString(fmt.Sprintf("Label ..................: %s\n", p.Label))
	status.WriteString(fmt.Sprintf("Initialized ............: %v\n", p.Initialized))
	status.WriteString(fmt.Sprintf("PIN protection .........: %v\n", p.PinProtection))
	status.WriteString(fmt.Sprintf("Passphrase protection ..: %v\n", p.PassphraseProtection))
	status.WriteString(fmt.Sprintf("PIN cached .............: %v\n", p.PinCached))
	status.WriteString(fmt.Sprintf("Passphrase cached ......: %v", p.PassphraseCached))

	return status.String()
}
