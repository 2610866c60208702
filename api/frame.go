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
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// ReportSize is the length of every HID report.
	ReportSize = 64

	reportMarker = '?'
	headerMarker = '#'
	// '?' '#' '#' type(2) length(4)
	headerLength = 9
)

// Encode splits a message into zero padded HID reports.
func Encode(m Message) ([][]byte, error) {
	payload, err := Marshal(m)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, headerLength-1, headerLength-1+len(payload))
	buf[0] = headerMarker
	buf[1] = headerMarker
	binary.BigEndian.PutUint16(buf[2:], uint16(m.Type()))
	binary.BigEndian.PutUint32(buf[4:], uint32(len(payload)))
	buf = append(buf, payload...)

	var reports [][]byte

	for len(buf) > 0 {
		r := make([]byte, ReportSize)
		r[0] = reportMarker
		n := copy(r[1:], buf)
		buf = buf[n:]
		reports = append(reports, r)
	}

	return reports, nil
}

// DecodeError is returned when a complete message fails to decode, the type
// is preserved so that a Failure can be sent in response.
type DecodeError struct {
	Kind MessageType
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode %v, %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Reassembler rebuilds messages from a stream of HID reports.
type Reassembler struct {
	active bool
	kind   MessageType
	want   int
	buf    []byte
}

// Reset drops any partially received message.
func (r *Reassembler) Reset() {
	clear(r.buf)
	r.buf = r.buf[:0]
	r.active = false
	r.want = 0
}

// Write consumes one report, returning a message once all of its reports
// have been received.
func (r *Reassembler) Write(report []byte) (Message, error) {
	if len(report) == 0 || report[0] != reportMarker {
		r.Reset()
		return nil, errors.New("malformed report")
	}

	data := report[1:]

	if !r.active {
		if len(data) < headerLength-1 || data[0] != headerMarker || data[1] != headerMarker {
			// stray continuation report, ignore it
			return nil, nil
		}

		r.kind = MessageType(binary.BigEndian.Uint16(data[2:]))
		r.want = int(binary.BigEndian.Uint32(data[4:]))

		if r.want > MaxMessageSize {
			r.Reset()
			return nil, fmt.Errorf("%v length %d exceeds %d", r.kind, r.want, MaxMessageSize)
		}

		r.active = true
		data = data[headerLength-1:]
	}

	if n := r.want - len(r.buf); len(data) > n {
		data = data[:n]
	}

	r.buf = append(r.buf, data...)

	if len(r.buf) < r.want {
		return nil, nil
	}

	defer r.Reset()

	m := New(r.kind)

	if err := Unmarshal(r.buf, m); err != nil {
		return nil, &DecodeError{Kind: r.kind, Err: err}
	}

	return m, nil
}
