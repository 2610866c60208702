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

// Package display renders device screens as text.
//
// The USB armory has no screen, screens are written to a console instead
// and the last one is kept for the debug link.
package display

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

const width = 32

// Console renders screens to a writer.
type Console struct {
	mu sync.Mutex

	w    io.Writer
	last string
	// caret pending for the next picker frame
	caret bool
	// last picker frame, reprinted only on change
	frame string
}

// New returns a Console writing to w, a nil writer only keeps the last
// screen.
func New(w io.Writer) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{w: w}
}

// Last returns the most recently rendered screen.
func (c *Console) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// show renders s, only its kind is logged as screens may carry secrets.
func (c *Console) show(kind, s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = s
	c.frame = ""

	klog.V(2).Infof("Screen %s", kind)
	fmt.Fprintln(c.w, s)
}

func border() string {
	return "+" + strings.Repeat("-", width) + "+\n"
}

func line(s string) string {
	if len(s) > width {
		s = s[:width]
	}
	return fmt.Sprintf("|%-*s|\n", width, s)
}

// Dialog shows lines of text above optional No and Yes button labels.
func (c *Console) Dialog(no, yes string, lines ...string) {
	c.show("dialog", dialog(no, yes, lines...))
}

func dialog(no, yes string, lines ...string) string {
	var b strings.Builder

	b.WriteString(border())
	for _, l := range lines {
		b.WriteString(line(l))
	}
	if no != "" || yes != "" {
		l, r := label(no), label(yes)
		pad := max(width-len(l)-len(r), 1)
		b.WriteString(line(l + strings.Repeat(" ", pad) + r))
	}
	b.WriteString(strings.TrimSuffix(border(), "\n"))

	return b.String()
}

func label(s string) string {
	if s == "" {
		return ""
	}
	return "[" + s + "]"
}

// Matrix shows the PIN keypad.
func (c *Console) Matrix(prompt string, grid [3][3]byte) {
	var b strings.Builder

	b.WriteString(border())
	b.WriteString(line(prompt))
	for _, row := range grid {
		b.WriteString(line(fmt.Sprintf("          %c   %c   %c", row[0], row[1], row[2])))
	}
	b.WriteString(strings.TrimSuffix(border(), "\n"))

	c.show("matrix", b.String())
}

// Scroll shows the passphrase entered so far above a window of screen
// entries centred on the cursor. The padding applies to pixel layouts only.
func (c *Console) Scroll(text []byte, labels []string, cursor, screen, padding int) {
	var b strings.Builder

	b.WriteString(border())
	b.WriteString(line(visible(text, c.takeCaret())))

	var items []string
	for i := -screen / 2; i <= screen/2; i++ {
		l := labels[(cursor+i+len(labels))%len(labels)]
		if i == 0 {
			l = ">" + l + "<"
		}
		items = append(items, l)
	}
	b.WriteString(line(strings.Join(items, " ")))
	b.WriteString(strings.TrimSuffix(border(), "\n"))

	c.mu.Lock()
	defer c.mu.Unlock()

	s := b.String()
	c.last = s
	if s == c.frame {
		return
	}
	c.frame = s
	fmt.Fprintln(c.w, s)
}

func (c *Console) takeCaret() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.caret
	c.caret = false
	return r
}

// visible maps the in-band space marker for display and appends the caret.
func visible(text []byte, caret bool) string {
	s := string(bytes.ReplaceAll(text, []byte{0x09}, []byte{' '}))
	if caret {
		s += "_"
	}
	if len(s) > width {
		s = s[len(s)-width:]
	}
	return s
}

// Caret shows the caret on the next picker frame.
func (c *Console) Caret() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.caret = true
}

// CheckPassphrase asks the user to confirm the passphrase.
func (c *Console) CheckPassphrase(text []byte) {
	c.show("passphrase check", dialog("Edit", "OK", "Confirm passphrase:", visible(text, false)))
}

// Swipe and SwipeRight are screen transitions.
func (c *Console) Swipe() {}

func (c *Console) SwipeRight() {}

// Home shows the idle screen.
func (c *Console) Home() {
	c.show("home", border() + line("armored wallet") + strings.TrimSuffix(border(), "\n"))
}
