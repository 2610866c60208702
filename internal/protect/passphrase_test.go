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
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/transparency-dev/armored-wallet/api"
	"github.com/transparency-dev/armored-wallet/internal/testonly"
)

// goal is one thing the user wants to do. Goals marked fresh wait until
// the picker has been redrawn since the previous goal finished.
type goal struct {
	fresh bool
	plan  func(u *user) []testonly.Press
}

// user drives the buttons like a person reading the display.
type user struct {
	t      *testing.T
	layout *testonly.Layout

	goals []goal
	steps []testonly.Press
	mark  int
}

func (u *user) Pressed() (bool, bool) {
	for len(u.steps) == 0 {
		if len(u.goals) == 0 {
			panic(testonly.ErrExhausted)
		}
		g := u.goals[0]
		if g.fresh && u.layout.Draws <= u.mark {
			return false, false
		}
		u.goals = u.goals[1:]
		u.steps = g.plan(u)
	}

	s := u.steps[0]
	u.steps = u.steps[1:]
	if len(u.steps) == 0 {
		u.mark = u.layout.Draws
	}
	if s.Do != nil {
		s.Do()
	}
	return s.Yes, s.No
}

func (u *user) add(goals ...[]goal) {
	for _, g := range goals {
		u.goals = append(u.goals, g...)
	}
}

// pick moves the cursor to the entry labelled l and confirms it.
func pick(l string) []goal {
	return pickWith(l, testonly.Chord())
}

// pickWith is pick confirming with the given chord.
func pickWith(l string, chord []testonly.Press) []goal {
	return []goal{{
		fresh: true,
		plan: func(u *user) []testonly.Press {
			u.t.Helper()
			i := slices.Index(u.layout.Labels, l)
			if i < 0 {
				u.t.Fatalf("No entry %q on screen %q", l, u.layout.Labels)
			}
			var r []testonly.Press
			for n := (i - u.layout.Cursor + len(u.layout.Labels)) % len(u.layout.Labels); n > 0; n-- {
				r = append(r, testonly.TapYes()...)
			}
			return append(r, chord...)
		},
	}}
}

func press(p ...[]testonly.Press) []goal {
	return []goal{{
		plan: func(*user) []testonly.Press {
			var r []testonly.Press
			for _, q := range p {
				r = append(r, q...)
			}
			return r
		},
	}}
}

// look runs f once the picker has been redrawn.
func look(f func()) []goal {
	return []goal{{
		fresh: true,
		plan: func(*user) []testonly.Press {
			f()
			return nil
		},
	}}
}

// typed enters s through the picker, returning to the main menu after
// each character.
func typed(s string) []goal {
	var r []goal
	for _, c := range []byte(s) {
		for _, grp := range groups {
			if strings.IndexByte(grp, c) < 0 {
				continue
			}
			l := string(c)
			if c == ' ' {
				l = "SP"
			}
			r = append(append(append(r, pick(strings.ReplaceAll(grp, " ", "_"))...), pick(l)...), pick("BACK")...)
			break
		}
	}
	return r
}

var (
	// the flow opens with an explanation, then asks once or twice
	startOnce  = press(testonly.TapYes(), testonly.TapNo(), testonly.TapYes())
	startTwice = press(testonly.TapYes(), testonly.TapYes(), testonly.TapYes())
	accept     = press(testonly.TapYes())
	reject     = press(testonly.TapNo())
	next       = press(testonly.TapYes())
)

func passphraseFixture(t *testing.T) (*fixture, *user) {
	t.Helper()
	u := &user{t: t}
	f := newFixture(t, u)
	u.layout = f.layout
	if err := f.store.SetPassphraseProtection(true); err != nil {
		t.Fatalf("SetPassphraseProtection: %v", err)
	}
	return f, u
}

func zeroed(s *secret) bool {
	return s.n == 0 && bytes.Equal(s.b[:], make([]byte, len(s.b)))
}

func checkCommitted(t *testing.T, f *fixture, want string) {
	t.Helper()
	if !f.session.PassphraseCached() {
		t.Fatal("Passphrase not cached")
	}
	if got := string(f.session.Passphrase()); got != want {
		t.Fatalf("Got passphrase %q, want %q", got, want)
	}
	if !zeroed(&f.passphrase.first) || !zeroed(&f.passphrase.second) {
		t.Fatal("Passphrase buffers not wiped")
	}
	if f.channel.Tiny() {
		t.Fatal("Tiny mode left on")
	}
}

func TestPassphraseNotRequired(t *testing.T) {
	f := newFixture(t, &testonly.Buttons{})
	if !f.Passphrase() {
		t.Fatal("Got false with passphrase protection off")
	}

	f, _ = passphraseFixture(t)
	f.session.CachePassphrase([]byte("cached"))
	if !f.Passphrase() {
		t.Fatal("Got false with a cached passphrase")
	}
	if len(f.layout.Log) != 0 {
		t.Fatalf("Got screens %q, want none", f.layout.Log)
	}
}

func TestPassphraseOnce(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(
		startOnce,
		typed("hi Yo"),
		pick("OK"),
		accept,
	)

	if !f.Passphrase() {
		t.Fatal("Got false, want true")
	}
	checkCommitted(t, f, "hi Yo")
	if !f.layout.Saw("check: hi\x09Yo") {
		t.Fatalf("Passphrase not shown for confirmation, got %q", f.layout.Log)
	}
	if !f.layout.Saw("home") {
		t.Fatal("Home screen not restored")
	}
	if f.layout.Carets == 0 {
		t.Fatal("Caret never drawn")
	}
}

func TestPassphraseSpaces(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(startOnce, typed(" a  B "), pick("OK"), accept)

	if !f.Passphrase() {
		t.Fatal("Got false, want true")
	}
	checkCommitted(t, f, " a  B ")
	if bytes.IndexByte(f.session.Passphrase(), spaceMarker) >= 0 {
		t.Fatal("Space marker leaked into the passphrase")
	}
}

func TestPassphraseEditAfterReject(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(
		startOnce,
		typed("abx"),
		pick("OK"),
		reject,
		// back in the picker with the text kept
		look(func() {
			if u.layout.Text != "abx" {
				t.Errorf("Got text %q after reject, want %q", u.layout.Text, "abx")
			}
		}),
		pick("DEL"),
		typed("c"),
		pick("OK"),
		accept,
	)

	if !f.Passphrase() {
		t.Fatal("Got false, want true")
	}
	checkCommitted(t, f, "abc")
	if !f.layout.Saw("swipe right") {
		t.Fatal("Reject transition not shown")
	}
}

func TestPassphraseTwice(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(
		startTwice,
		typed("abc"), pick("OK"), accept,
		next,
		typed("abd"), pick("OK"), accept,
		// mismatch, both entries start over
		next,
		next,
		look(func() {
			if u.layout.Text != "" {
				t.Errorf("Got text %q after mismatch, want none", u.layout.Text)
			}
			if !zeroed(&f.passphrase.first) || !zeroed(&f.passphrase.second) {
				t.Error("Buffers not wiped after mismatch")
			}
		}),
		typed("abc"), pick("OK"), accept,
		next,
		typed("abc"), pick("OK"), accept,
	)

	if !f.Passphrase() {
		t.Fatal("Got false, want true")
	}
	checkCommitted(t, f, "abc")
	if !f.layout.Saw("Passphrases do not match") {
		t.Fatal("Mismatch not shown")
	}
}

func TestPassphraseCapped(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(startOnce, pick("abcdefghi"))
	for i := 0; i < maxPassphrase; i++ {
		u.add(pick("a"))
	}
	u.add(
		look(func() {
			if !slices.Equal(u.layout.Labels, []string{"DEL", "OK", "DEL", "OK"}) {
				t.Errorf("Got entries %q at the cap", u.layout.Labels)
			}
			if len(u.layout.Text) != maxPassphrase {
				t.Errorf("Got %d characters, want %d", len(u.layout.Text), maxPassphrase)
			}
		}),
		pick("DEL"),
		look(func() {
			if !slices.Contains(u.layout.Labels, "BACK") {
				t.Errorf("Got entries %q after deleting, want the group", u.layout.Labels)
			}
		}),
		pick("b"),
		look(func() {
			if u.layout.Labels[0] != "DEL" {
				t.Errorf("Got entries %q, want capped", u.layout.Labels)
			}
		}),
		pick("OK"),
		accept,
	)

	if !f.Passphrase() {
		t.Fatal("Got false, want true")
	}
	checkCommitted(t, f, strings.Repeat("a", maxPassphrase-1)+"b")
}

func TestPassphraseInterrupted(t *testing.T) {
	for _, test := range []struct {
		name        string
		msg         api.Message
		wantAborted bool
	}{
		{
			name: "cancel",
			msg:  &api.Cancel{},
		}, {
			name:        "initialize",
			msg:         &api.Initialize{},
			wantAborted: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			f, u := passphraseFixture(t)
			u.add(
				startTwice,
				typed("ab"),
				look(func() {
					if u.layout.Text != "ab" {
						t.Errorf("Got text %q, want %q", u.layout.Text, "ab")
					}
				}),
				press(testonly.Then(func() { f.link.Queue(test.msg) }), testonly.Idle(2)),
			)

			if f.Passphrase() {
				t.Fatal("Got true from an interrupted flow")
			}
			if got := f.Aborted(); got != test.wantAborted {
				t.Fatalf("Got aborted %t, want %t", got, test.wantAborted)
			}
			if f.session.PassphraseCached() {
				t.Fatal("Passphrase cached after interruption")
			}
			if !zeroed(&f.passphrase.first) || !zeroed(&f.passphrase.second) {
				t.Fatal("Passphrase buffers not wiped")
			}
			if f.channel.Tiny() {
				t.Fatal("Tiny mode left on")
			}
		})
	}
}

func TestPassphraseInterruptedInDialog(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(press(testonly.Then(func() { f.link.Queue(&api.Initialize{}) }), testonly.Idle(2)))

	if f.Passphrase() {
		t.Fatal("Got true from an interrupted flow")
	}
	if !f.Aborted() {
		t.Fatal("Abort not flagged")
	}
}

func TestPassphraseBlocksWithoutDone(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(startOnce, typed("abc"), press(testonly.Idle(50)))

	err := testonly.Stopped(func() { f.Passphrase() })
	if !errors.Is(err, testonly.ErrExhausted) {
		t.Fatalf("Got %v, want the flow to block", err)
	}
}

func TestPassphraseHeldDone(t *testing.T) {
	for _, test := range []struct {
		name string
		// after a long Done chord, before any further press
		release []testonly.Press
	}{
		{
			name: "released together",
		}, {
			name:    "yes released first",
			release: []testonly.Press{{No: true}, {No: true}, {}},
		}, {
			name:    "no released first",
			release: []testonly.Press{{Yes: true}, {Yes: true}, {}},
		}, {
			name:    "chord on the check screen",
			release: testonly.HeldChord(10),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			done := testonly.HeldChord(10)
			if test.release != nil {
				// drop the final release of the chord
				done = append(done[:len(done)-1], test.release...)
			}

			f, u := passphraseFixture(t)
			u.add(startOnce, typed("ab"), pickWith("OK", done), press(testonly.Idle(50)))

			err := testonly.Stopped(func() { f.Passphrase() })
			if !errors.Is(err, testonly.ErrExhausted) {
				t.Fatalf("Got %v, want the flow to wait on the check screen", err)
			}
			if f.session.PassphraseCached() {
				t.Fatal("Passphrase accepted without a Yes press")
			}

			f, u = passphraseFixture(t)
			u.add(startOnce, typed("ab"), pickWith("OK", done), reject, typed("c"), pickWith("OK", done), accept)
			if !f.Passphrase() {
				t.Fatal("Got false, want true")
			}
			checkCommitted(t, f, "abc")
		})
	}
}

func TestPassphraseHeldChordOnDialog(t *testing.T) {
	f, u := passphraseFixture(t)
	// a chord on the opening dialog neither advances it nor picks Once
	u.add(press(testonly.HeldChord(10), testonly.Idle(20)))

	err := testonly.Stopped(func() { f.Passphrase() })
	if !errors.Is(err, testonly.ErrExhausted) {
		t.Fatalf("Got %v, want the flow to block", err)
	}
	if f.layout.Saw("Twice") {
		t.Fatalf("Dialog advanced on a chord, got %q", f.layout.Log)
	}
}

func TestPassphraseCaretOnFrame(t *testing.T) {
	f, u := passphraseFixture(t)
	u.add(
		startOnce,
		look(func() {
			if !u.layout.CaretShown {
				t.Error("Caret missing from the first picker frame")
			}
		}),
		press(testonly.Idle(90)),
		look(func() {
			if u.layout.CaretShown {
				t.Error("Caret shown past its blink period")
			}
		}),
		pick("OK"),
		accept,
	)

	if !f.Passphrase() {
		t.Fatal("Got false, want true")
	}
}

func TestShuffleExcludesControls(t *testing.T) {
	var values []uint32
	for i := uint32(0); i < 64; i++ {
		values = append(values, i)
	}
	g := &Guard{RNG: &testonly.Rand{Values: values}}
	f := &passphraseFlow{g: g}

	for _, m := range []*menu{&mainMenu, &subMenus[0], &subMenus[6], &subMenus[9], &cappedMenu} {
		seen := map[int]bool{}
		for i := 0; i < len(values); i++ {
			c := f.shuffle(m)
			if c < 0 || c >= len(m.entries)-m.excluded {
				t.Fatalf("Cursor %d lands on a control entry of %q", c, m.labels)
			}
			seen[c] = true
		}
		if len(seen) != len(m.entries)-m.excluded {
			t.Fatalf("Got %d cursor positions on %q, want %d", len(seen), m.labels, len(m.entries)-m.excluded)
		}
	}
}

func TestMenus(t *testing.T) {
	if got, want := len(mainMenu.entries), 12; got != want {
		t.Fatalf("Got %d main entries, want %d", got, want)
	}
	for i, m := range subMenus {
		last := m.labels[len(m.labels)-3:]
		if !slices.Equal(last, []string{"DEL", "OK", "BACK"}) {
			t.Errorf("Sub menu %d ends with %q", i, last)
		}
		if got, want := len(m.entries)-3, len(groups[i]); got != want {
			t.Errorf("Sub menu %d has %d characters, want %d", i, got, want)
		}
	}
	if got := subMenus[2].entries[8].kind; got != spaceEntry {
		t.Errorf("Got kind %d, want space", got)
	}
}
