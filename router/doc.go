// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the todo list.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg)

# Endpoints

Health:

	GET /health

Todo list:

	GET  /              - Render the list
	POST /new_entry     - Add an empty entry, redirect to /
	POST /update/{id}   - Update or delete entry {id}, redirect to /

Any other path is 404; a known path with the wrong method is 405.
*/
package router
