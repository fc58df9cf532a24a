// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cookie todo server.

The todo list lives entirely in the client's cookies: one cookie per entry,
named by the entry id, holding the encoded entry. The server keeps no state
between requests.

# Starting the Server

	go run .

Or with flags:

	go run . -p 8080 -malformed skip

# Configuration

All settings are optional; see package cliparse:

  - PORT (-p): Server port (default: 3318)
  - COOKIE_MAX_AGE, COOKIE_SECURE: cookie attributes
  - ID_POLICY: counter (default) or count
  - MALFORMED_POLICY: fail (default) or skip
  - LOG_FORMAT: text (default) or json

A .env file in the working directory is loaded first if present.

# Architecture

  - handlers: render, create and update handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, request ids, error responses
  - view: HTML page rendering
  - store: entries as cookies, id allocation
  - codec: cookie value and form encoding
  - models: Domain types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
