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

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Marshal returns the protobuf encoding of a message payload.
func Marshal(m Message) ([]byte, error) {
	switch m := m.(type) {
	case *Unknown:
		return m.Payload, nil
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("%v: not a protobuf message", m.Type())
}

// Unmarshal decodes a protobuf payload into m, unknown fields are kept as
// such.
func Unmarshal(b []byte, m Message) error {
	switch m := m.(type) {
	case *Unknown:
		m.Payload = append([]byte(nil), b...)
		return nil
	case proto.Message:
		if err := proto.Unmarshal(b, m); err != nil {
			return fmt.Errorf("%v: %v", m.(Message).Type(), err)
		}
		return nil
	}
	return fmt.Errorf("%v: not a protobuf message", m.Type())
}
