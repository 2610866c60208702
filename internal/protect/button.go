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

package protect

import (
	"k8s.io/klog/v2"

	"github.com/transparency-dev/armored-wallet/api"
)

// Button asks the host to acknowledge a button request and waits for the
// user to press Yes, or No unless confirmOnly is set. It returns true only
// on Yes, or on a debug link decision once the request was acknowledged.
func (g *Guard) Button(code api.ButtonRequest_ButtonRequestType, confirmOnly bool) bool {
	g.begin()

	g.Host.SetTiny(true)
	defer g.Host.SetTiny(false)

	g.Buttons.Update()

	if err := g.Host.Send(&api.ButtonRequest{Code: code}); err != nil {
		klog.Warningf("Failed to request button: %v", err)
		return false
	}

	var acked, decided, decision bool

	for {
		b := g.tick()

		switch m := g.Host.Take().(type) {
		case *api.ButtonAck:
			acked = true
		case *api.DebugLinkDecision:
			if g.DebugLink != nil {
				decided, decision = true, m.YesNo
			}
		default:
			if g.interrupted(m) {
				return false
			}
		}

		if !acked {
			continue
		}

		switch {
		case decided:
			return decision
		case b.YesUp:
			return true
		case b.NoUp && !confirmOnly:
			return false
		}
	}
}
