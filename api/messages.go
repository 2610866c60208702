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

package api

import "fmt"

// MessageType identifies a message on the wire, numbering follows the
// Trezor protocol.
type MessageType uint16

const (
	MessageType_Initialize        MessageType = 0
	MessageType_Ping              MessageType = 1
	MessageType_Success           MessageType = 2
	MessageType_Failure           MessageType = 3
	MessageType_ChangePin         MessageType = 4
	MessageType_WipeDevice        MessageType = 5
	MessageType_Features          MessageType = 17
	MessageType_PinMatrixRequest  MessageType = 18
	MessageType_PinMatrixAck      MessageType = 19
	MessageType_Cancel            MessageType = 20
	MessageType_ClearSession      MessageType = 24
	MessageType_ApplySettings     MessageType = 25
	MessageType_ButtonRequest     MessageType = 26
	MessageType_ButtonAck         MessageType = 27
	MessageType_GetFeatures       MessageType = 55
	MessageType_DebugLinkDecision MessageType = 100
	MessageType_DebugLinkGetState MessageType = 101
	MessageType_DebugLinkState    MessageType = 102
)

var messageTypeNames = map[MessageType]string{
	MessageType_Initialize:        "Initialize",
	MessageType_Ping:              "Ping",
	MessageType_Success:           "Success",
	MessageType_Failure:           "Failure",
	MessageType_ChangePin:         "ChangePin",
	MessageType_WipeDevice:        "WipeDevice",
	MessageType_Features:          "Features",
	MessageType_PinMatrixRequest:  "PinMatrixRequest",
	MessageType_PinMatrixAck:      "PinMatrixAck",
	MessageType_Cancel:            "Cancel",
	MessageType_ClearSession:      "ClearSession",
	MessageType_ApplySettings:     "ApplySettings",
	MessageType_ButtonRequest:     "ButtonRequest",
	MessageType_ButtonAck:         "ButtonAck",
	MessageType_GetFeatures:       "GetFeatures",
	MessageType_DebugLinkDecision: "DebugLinkDecision",
	MessageType_DebugLinkGetState: "DebugLinkGetState",
	MessageType_DebugLinkState:    "DebugLinkState",
}

func (t MessageType) String() string {
	if n, ok := messageTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("MessageType(%d)", uint16(t))
}

// Message is implemented by every type in this package that can travel on
// the wire.
type Message interface {
	Type() MessageType
}

// Unknown holds a message of a type this package does not decode.
type Unknown struct {
	Kind    MessageType
	Payload []byte
}

func (*Initialize) Type() MessageType        { return MessageType_Initialize }
func (*GetFeatures) Type() MessageType       { return MessageType_GetFeatures }
func (*Ping) Type() MessageType              { return MessageType_Ping }
func (*Success) Type() MessageType           { return MessageType_Success }
func (*Failure) Type() MessageType           { return MessageType_Failure }
func (*ChangePin) Type() MessageType         { return MessageType_ChangePin }
func (*WipeDevice) Type() MessageType        { return MessageType_WipeDevice }
func (*Features) Type() MessageType          { return MessageType_Features }
func (*PinMatrixRequest) Type() MessageType  { return MessageType_PinMatrixRequest }
func (*PinMatrixAck) Type() MessageType      { return MessageType_PinMatrixAck }
func (*Cancel) Type() MessageType            { return MessageType_Cancel }
func (*ClearSession) Type() MessageType      { return MessageType_ClearSession }
func (*ApplySettings) Type() MessageType     { return MessageType_ApplySettings }
func (*ButtonRequest) Type() MessageType     { return MessageType_ButtonRequest }
func (*ButtonAck) Type() MessageType         { return MessageType_ButtonAck }
func (*DebugLinkDecision) Type() MessageType { return MessageType_DebugLinkDecision }
func (*DebugLinkGetState) Type() MessageType { return MessageType_DebugLinkGetState }
func (*DebugLinkState) Type() MessageType    { return MessageType_DebugLinkState }
func (m *Unknown) Type() MessageType         { return m.Kind }

// New returns an empty message of the given type, or an Unknown holder.
func New(t MessageType) Message {
	switch t {
	case MessageType_Initialize:
		return &Initialize{}
	case MessageType_GetFeatures:
		return &GetFeatures{}
	case MessageType_Ping:
		return &Ping{}
	case MessageType_Success:
		return &Success{}
	case MessageType_Failure:
		return &Failure{}
	case MessageType_ChangePin:
		return &ChangePin{}
	case MessageType_WipeDevice:
		return &WipeDevice{}
	case MessageType_Features:
		return &Features{}
	case MessageType_PinMatrixRequest:
		return &PinMatrixRequest{}
	case MessageType_PinMatrixAck:
		return &PinMatrixAck{}
	case MessageType_Cancel:
		return &Cancel{}
	case MessageType_ClearSession:
		return &ClearSession{}
	case MessageType_ApplySettings:
		return &ApplySettings{}
	case MessageType_ButtonRequest:
		return &ButtonRequest{}
	case MessageType_ButtonAck:
		return &ButtonAck{}
	case MessageType_DebugLinkDecision:
		return &DebugLinkDecision{}
	case MessageType_DebugLinkGetState:
		return &DebugLinkGetState{}
	case MessageType_DebugLinkState:
		return &DebugLinkState{}
	}

	return &Unknown{Kind: t}
}
