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
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

const (
	// at the 5ms flow poll interval, below the first repeat threshold
	tapPolls = 10
	// long enough for several repeats
	holdPolls = 200
)

type level struct {
	yes, no bool
}

// keyboard emulates the device buttons from gestures typed on a console,
// one line at a time. Levels are consumed only while the device polls.
type keyboard struct {
	mu     sync.Mutex
	levels []level
}

// gesture returns the button levels for a line of input: y, n and b tap
// Yes, No and both buttons, upper case letters hold them instead.
func gesture(line string) ([]level, error) {
	var r []level

	for _, c := range strings.TrimSpace(line) {
		var l level
		n := tapPolls

		switch c {
		case 'y', 'Y':
			l.yes = true
		case 'n', 'N':
			l.no = true
		case 'b', 'B':
			l.yes, l.no = true, true
		case ' ':
			r = append(r, make([]level, tapPolls)...)
			continue
		default:
			return nil, fmt.Errorf("unknown gesture %q", c)
		}

		if c >= 'A' && c <= 'Z' {
			n = holdPolls
		}

		for i := 0; i < n; i++ {
			r = append(r, l)
		}
		r = append(r, make([]level, tapPolls)...)
	}

	return r, nil
}

func (k *keyboard) read(r io.Reader) {
	s := bufio.NewScanner(r)

	for s.Scan() {
		levels, err := gesture(s.Text())
		if err != nil {
			klog.Warningf("Ignoring input: %v", err)
			continue
		}

		k.mu.Lock()
		k.levels = append(k.levels, levels...)
		k.mu.Unlock()
	}

	if err := s.Err(); err != nil {
		klog.Warningf("Button input closed: %v", err)
	}
}

// Pressed implements buttons.Driver.
func (k *keyboard) Pressed() (bool, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if len(k.levels) == 0 {
		return false, false
	}

	l := k.levels[0]
	k.levels = k.levels[1:]

	return l.yes, l.no
}
