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
	"crypto/subtle"
	"strings"

	"github.com/transparency-dev/armored-wallet/internal/buttons"
	"github.com/transparency-dev/armored-wallet/internal/input"
	"github.com/transparency-dev/armored-wallet/internal/rng"
	"github.com/transparency-dev/armored-wallet/internal/session"
)

const (
	maxPassphrase = session.MaxPassphraseLength

	// space is held in-band until the passphrase is committed
	spaceMarker = 0x09

	caretShow  = 80
	caretCycle = 2 * caretShow
)

type entryKind uint8

const (
	charEntry entryKind = iota
	spaceEntry
	backspaceEntry
	doneEntry
	backEntry
	groupEntry
)

type entry struct {
	kind entryKind
	// character for charEntry, menu index for groupEntry
	char  byte
	group int
}

func (e entry) label() string {
	switch e.kind {
	case charEntry:
		return string(e.char)
	case spaceEntry:
		return "SP"
	case backspaceEntry:
		return "DEL"
	case doneEntry:
		return "OK"
	case backEntry:
		return "BACK"
	}
	return strings.ReplaceAll(groups[e.group], " ", "_")
}

// menu is one picker screen. The last excluded entries are never chosen as
// the initial cursor position.
type menu struct {
	entries  []entry
	labels   []string
	screen   int
	padding  int
	excluded int
}

func newMenu(entries []entry, screen, padding, excluded int) menu {
	m := menu{
		entries:  entries,
		screen:   screen,
		padding:  padding,
		excluded: excluded,
	}
	for _, e := range entries {
		m.labels = append(m.labels, e.label())
	}
	return m
}

var groups = [...]string{
	"abcdefghi",
	"jklmnopqr",
	"stuvwxyz ",
	"ABCDEFGHI",
	"JKLMNOPQR",
	"STUVWXYZ ",
	"1234567890",
	"!@#$%^&*()",
	"`-=[]\\;',./",
	"~_+{}|:\"<>?",
}

var (
	mainMenu   menu
	subMenus   [len(groups)]menu
	cappedMenu menu
)

func init() {
	var main []entry
	for i, grp := range groups {
		main = append(main, entry{kind: groupEntry, group: i})

		var sub []entry
		for j := 0; j < len(grp); j++ {
			if grp[j] == ' ' {
				sub = append(sub, entry{kind: spaceEntry})
				continue
			}
			sub = append(sub, entry{kind: charEntry, char: grp[j]})
		}
		sub = append(sub, entry{kind: backspaceEntry}, entry{kind: doneEntry}, entry{kind: backEntry})
		subMenus[i] = newMenu(sub, 5, 4, 3)
	}
	main = append(main, entry{kind: backspaceEntry}, entry{kind: doneEntry})
	mainMenu = newMenu(main, 3, 0, 2)

	cappedMenu = newMenu([]entry{
		{kind: backspaceEntry},
		{kind: doneEntry},
		{kind: backspaceEntry},
		{kind: doneEntry},
	}, 3, 6, 0)
}

// secret is a fixed size passphrase buffer.
type secret struct {
	b [maxPassphrase + 1]byte
	n int
}

func (s *secret) add(c byte) {
	if s.n < maxPassphrase {
		s.b[s.n] = c
		s.n++
	}
}

func (s *secret) backspace() {
	if s.n > 0 {
		s.n--
		s.b[s.n] = 0
	}
}

func (s *secret) bytes() []byte {
	return s.b[:s.n]
}

func (s *secret) wipe() {
	clear(s.b[:])
	s.n = 0
}

// commit replaces the space markers with spaces.
func (s *secret) commit() {
	for i := 0; i < s.n; i++ {
		if s.b[i] == spaceMarker {
			s.b[i] = ' '
		}
	}
}

type navMode int

const (
	readOnly navMode = iota
	appendChar
)

// navigate results other than an entry index
const (
	inputBack  = -1
	inputDone  = -2
	inputAbort = -3
)

type passphraseFlow struct {
	g       *Guard
	decoder *input.Decoder
	caret   int

	first  secret
	second secret
}

func (f *passphraseFlow) reset(g *Guard) {
	f.g = g
	f.decoder = input.NewDecoder()
	f.caret = 0
	f.wipe()
}

func (f *passphraseFlow) wipe() {
	f.first.wipe()
	f.second.wipe()
}

// Passphrase asks the user to enter the passphrase on the device, once or
// twice as the user chooses, and caches it in the session. It returns true
// without asking when passphrase protection is off or a passphrase is
// already cached.
func (g *Guard) Passphrase() bool {
	g.begin()

	if !g.Storage.PassphraseProtection() || g.Session.PassphraseCached() {
		return true
	}

	g.Host.SetTiny(true)
	defer g.Host.SetTiny(false)

	f := &g.passphrase
	f.reset(g)
	defer f.wipe()

	if !f.run() {
		return false
	}

	f.first.commit()
	g.Session.CachePassphrase(f.first.bytes())
	g.Layout.Home()

	return true
}

func (f *passphraseFlow) run() bool {
	l := f.g.Layout

	f.g.Buttons.Update()

	l.Dialog("", "Next", "You are about to enter", "the passphrase.", "Select how many times", "you'd like to do it.")
	if !f.waitYes() {
		return false
	}
	l.Swipe()

	l.Dialog("Once", "Twice", "If you are creating a new", "wallet or restoring an", "unused one, it is advised", "that you select Twice.")
	once, ok := f.choose()
	if !ok {
		return false
	}
	l.Swipe()

	for {
		l.Dialog("", "Next", "Enter the passphrase", "on the next screen.", "- Single button: scroll.", "- Hold: auto-scroll.", "- Both buttons: confirm.")
		if !f.waitYes() {
			return false
		}
		l.Swipe()

		if !f.enter(&f.first) {
			return false
		}
		l.Swipe()

		if once {
			return true
		}

		f.second.wipe()

		l.Dialog("", "Next", "Re-enter the passphrase.")
		if !f.waitYes() {
			return false
		}
		l.Swipe()

		if !f.enter(&f.second) {
			return false
		}
		l.Swipe()

		if subtle.ConstantTimeCompare(f.first.bytes(), f.second.bytes()) == 1 {
			return true
		}

		l.Dialog("", "Next", "Passphrases do not", "match. Try again.")
		if !f.waitYes() {
			return false
		}
		l.Swipe()

		f.first.wipe()
		f.second.wipe()
	}
}

// next waits one poll interval, it returns false if the host cancelled.
func (f *passphraseFlow) next() (buttons.Snapshot, bool) {
	b := f.g.tick()
	return b, !f.g.interrupted(f.g.Host.Take())
}

// release waits until both buttons are up, so that the end of a chord is
// not read as a decision.
func (f *passphraseFlow) release() bool {
	for !f.g.Buttons.Released() {
		if _, ok := f.next(); !ok {
			return false
		}
	}
	return true
}

func (f *passphraseFlow) waitYes() bool {
	if !f.release() {
		return false
	}

	for {
		b, ok := f.next()
		if !ok {
			return false
		}
		if b.YesUp && !b.NoUp {
			return true
		}
	}
}

// choose returns true when the user picks a single entry.
func (f *passphraseFlow) choose() (once bool, ok bool) {
	if !f.release() {
		return false, false
	}

	for {
		b, ok := f.next()
		if !ok {
			return false, false
		}
		if b.YesUp != b.NoUp {
			return b.NoUp, true
		}
	}
}

// enter runs the picker until the user accepts the result.
func (f *passphraseFlow) enter(buf *secret) bool {
	for {
		if !f.input(buf) {
			return false
		}
		f.g.Layout.Swipe()

		f.g.Layout.CheckPassphrase(buf.bytes())
		if !f.release() {
			return false
		}

		for {
			b, ok := f.next()
			if !ok {
				return false
			}
			if b.YesUp && b.NoUp {
				continue
			}
			if b.YesUp {
				return true
			}
			if b.NoUp {
				break
			}
		}

		f.g.Layout.SwipeRight()
	}
}

// input edits buf until Done is confirmed, it returns false if the host
// cancelled.
func (f *passphraseFlow) input(buf *secret) bool {
	f.g.Buttons.Update()
	f.caret = 0

	if buf.n >= maxPassphrase {
		switch f.navigate(buf, &cappedMenu, readOnly) {
		case inputDone:
			return true
		case inputAbort:
			return false
		}
	}

	for {
		i := f.navigate(buf, &mainMenu, readOnly)
		switch {
		case i == inputDone:
			return true
		case i == inputAbort:
			return false
		case i < 0 || mainMenu.entries[i].kind != groupEntry:
			continue
		}

		sub := &subMenus[mainMenu.entries[i].group]

	group:
		for {
			switch f.navigate(buf, sub, appendChar) {
			case inputDone:
				return true
			case inputAbort:
				return false
			case inputBack:
				break group
			}

			if buf.n >= maxPassphrase {
				switch f.navigate(buf, &cappedMenu, readOnly) {
				case inputDone:
					return true
				case inputAbort:
					return false
				}
			}
		}
	}
}

func (f *passphraseFlow) shuffle(m *menu) int {
	return int(rng.Uniform(f.g.RNG, uint32(len(m.entries)-m.excluded)))
}

// navigate moves the cursor over m until an entry is confirmed. Confirming
// a character returns its index, appending it in appendChar mode. Confirming
// Backspace deletes a character and stays, unless that brings the length
// back under the cap.
func (f *passphraseFlow) navigate(buf *secret, m *menu, mode navMode) int {
	n := len(m.entries)
	cursor := f.shuffle(m)

	for ; ; f.caret = (f.caret + 1) % caretCycle {
		b, ok := f.next()
		if !ok {
			return inputAbort
		}

		switch f.decoder.Step(b) {
		case input.Confirm:
			switch e := m.entries[cursor]; e.kind {
			case backspaceEntry:
				buf.backspace()
				if buf.n == maxPassphrase-1 {
					return cursor
				}
			case doneEntry:
				return inputDone
			case backEntry:
				return inputBack
			case charEntry:
				if mode == appendChar {
					buf.add(e.char)
				}
				return cursor
			case spaceEntry:
				if mode == appendChar {
					buf.add(spaceMarker)
				}
				return cursor
			default:
				return cursor
			}
			cursor = f.shuffle(m)
		case input.TapYes:
			cursor = (cursor + 1) % n
		case input.TapNo:
			cursor = (cursor - 1 + n) % n
		}

		if f.caret < caretShow {
			f.g.Layout.Caret()
		}
		f.g.Layout.Scroll(buf.bytes(), m.labels, cursor, m.screen, m.padding)
	}
}
