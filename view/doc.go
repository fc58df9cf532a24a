// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view renders the todo list page.

The page title and heading carry the counts as [done / total]. Each entry
is a list item, in ascending id order, with its own form posting to
/update/{id}: a finished checkbox, name and description inputs, and a
Delete/Update choice. A "New entry" form posts to /new_entry.

Page returns a templ component, so handlers can serve it directly:

	templ.Handler(view.Page(set)).ServeHTTP(w, r)

The markup is an html/template, so names and descriptions are escaped for
the context they appear in.
*/
package view
