// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"strconv"
)

// Command constants
const (
	CommandUpdate Command = "Update"
	CommandDelete Command = "Delete"
)

// Cookie name prefix reserved for bookkeeping cookies that are not entries
const InternalCookiePrefix = "todo_"

// Domain types

// Entry is one todo item. The zero value is a fresh entry.
type Entry struct {
	Finished    bool   `json:"finished"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EntryID identifies an entry within one client's cookie jar.
// Its decimal form is the cookie name.
type EntryID uint64

func (id EntryID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// EntrySet is the list rebuilt from the cookie jar on every request.
type EntrySet map[EntryID]Entry

// IDs returns the entry ids in ascending numeric order
func (s EntrySet) IDs() []EntryID {
	ids := make([]EntryID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Counts returns the number of finished entries and the total
func (s EntrySet) Counts() (done, total int) {
	for _, e := range s {
		if e.Finished {
			done++
		}
	}
	return done, len(s)
}

// Command is the mutation requested by an update form.
type Command string

func (c Command) Valid() bool {
	return c == CommandUpdate || c == CommandDelete
}

// Request types

// UpdateForm is a parsed POST /update/{id} submission.
type UpdateForm struct {
	Entry   Entry
	Command Command
}
