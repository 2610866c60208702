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

package buttons

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type levels [][2]bool

func (l *levels) Pressed() (bool, bool) {
	if len(*l) == 0 {
		return false, false
	}
	v := (*l)[0]
	*l = (*l)[1:]
	return v[0], v[1]
}

func TestSampler(t *testing.T) {
	drv := &levels{
		{false, false},
		{true, false},
		{true, true},
		{true, true},
		{false, true},
		{false, false},
		{false, false},
	}
	want := []Snapshot{
		{},
		{},
		{YesDown: 1},
		{YesDown: 2, NoDown: 1},
		{YesUp: true, NoDown: 2},
		{NoUp: true},
		{},
	}

	s := NewSampler(drv)
	var got []Snapshot
	for range want {
		got = append(got, s.Update())
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}
	if diff := cmp.Diff(want[len(want)-1], s.State()); diff != "" {
		t.Fatalf("State() diff: %s", diff)
	}
}

func TestSamplerReleased(t *testing.T) {
	drv := &levels{
		{true, false},
		{true, true},
		{false, true},
		{false, false},
	}
	want := []bool{false, false, false, true}

	s := NewSampler(drv)
	if !s.Released() {
		t.Fatal("Released() false before the first Update")
	}
	var got []bool
	for range want {
		s.Update()
		got = append(got, s.Released())
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Got diff: %s", diff)
	}
}
