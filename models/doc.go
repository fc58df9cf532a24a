// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types of the todo list.

# Domain Types

  - Entry: finished flag, name, description
  - EntryID: non-negative integer, the entry's cookie name
  - EntrySet: all entries of one request, keyed by EntryID
  - Command: Update or Delete

EntrySet has no fixed order; use IDs for display order:

	for _, id := range set.IDs() {
		entry := set[id]
	}

# Request Types

  - UpdateForm: the entry fields and command from an update form

# Constants

Commands:

	CommandUpdate = "Update"
	CommandDelete = "Delete"

Cookies whose name starts with InternalCookiePrefix ("todo_") hold
bookkeeping state and are never decoded as entries.
*/
package models
