// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the todo list.

# Handler

TodoHandler holds a cookie store built from the configuration:

	todoHandler := handlers.NewTodoHandler(cfg)

It keeps no per-client state. Every request reads the list from its own
cookies and writes changes back as Set-Cookie headers.

# Endpoints

	GET  /             → Render   (HTML list, [done / total])
	POST /new_entry    → NewEntry (303 to /)
	POST /update/{id}  → Update   (303 to /)

Update reads the form fields finished, name, description and command.
Command "Update" overwrites the entry, "Delete" removes it.

# Errors

  - Unreadable cookies on render: 500
  - Bad id or form on update: 400
  - Unknown id on update: 404
  - Entry too large for a cookie: 413

# Operations

The handlers are thin wrappers around two functions that work on any
store.Jar:

	id, err := handlers.CreateEntry(s, jar)
	err := handlers.MutateEntry(s, jar, id, form)
*/
package handlers
