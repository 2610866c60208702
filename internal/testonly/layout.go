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

package testonly

import (
	"strings"
)

// Layout records what the device would have displayed.
type Layout struct {
	// Log holds every screen other than the passphrase picker, in order.
	Log []string

	// Draws counts picker renders.
	Draws int
	// Text, Labels and Cursor describe the last picker render.
	Text   string
	Labels []string
	Cursor int
	// Carets counts caret renders, CaretShown is set when the last picker
	// render included one.
	Carets     int
	CaretShown bool

	caret bool
}

func (l *Layout) Dialog(no, yes string, lines ...string) {
	l.Log = append(l.Log, "dialog: "+strings.Join(nonEmpty(lines), " "))
}

func (l *Layout) Scroll(text []byte, labels []string, cursor, screen, padding int) {
	l.Draws++
	l.Text = string(text)
	l.Labels = labels
	l.Cursor = cursor
	l.CaretShown = l.caret
	l.caret = false
}

func (l *Layout) CheckPassphrase(text []byte) {
	l.Log = append(l.Log, "check: "+string(text))
}

func (l *Layout) Caret() {
	l.Carets++
	l.caret = true
}

func (l *Layout) Swipe()      { l.Log = append(l.Log, "swipe") }
func (l *Layout) SwipeRight() { l.Log = append(l.Log, "swipe right") }
func (l *Layout) Home()       { l.Log = append(l.Log, "home") }

// Saw reports whether any logged screen contains s.
func (l *Layout) Saw(s string) bool {
	for _, e := range l.Log {
		if strings.Contains(e, s) {
			return true
		}
	}
	return false
}

func nonEmpty(lines []string) []string {
	var r []string
	for _, s := range lines {
		if s != "" {
			r = append(r, s)
		}
	}
	return r
}
