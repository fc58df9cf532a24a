// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"testing"
)

func TestEntrySet_IDsAscending(t *testing.T) {
	set := EntrySet{10: {}, 2: {}, 0: {}, 7: {}}

	got := set.IDs()
	want := []EntryID{0, 2, 7, 10}
	if !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestEntrySet_Counts(t *testing.T) {
	tests := []struct {
		name      string
		set       EntrySet
		wantDone  int
		wantTotal int
	}{
		{"empty", EntrySet{}, 0, 0},
		{"nil", nil, 0, 0},
		{"mixed", EntrySet{0: {Name: "A"}, 1: {Finished: true, Name: "B"}}, 1, 2},
		{"all done", EntrySet{3: {Finished: true}, 5: {Finished: true}}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, total := tt.set.Counts()
			if done != tt.wantDone || total != tt.wantTotal {
				t.Errorf("Counts() = (%d, %d), want (%d, %d)", done, total, tt.wantDone, tt.wantTotal)
			}
		})
	}
}

func TestEntryID_String(t *testing.T) {
	if got := EntryID(42).String(); got != "42" {
		t.Errorf("String() = %q, want %q", got, "42")
	}
}

func TestCommand_Valid(t *testing.T) {
	for _, c := range []Command{CommandUpdate, CommandDelete} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	for _, c := range []Command{"", "update", "Archive"} {
		if c.Valid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}
