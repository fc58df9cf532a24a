// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, bytes, duration_ms). Each request gets a UUID, returned in the
X-Request-ID header and available to handlers:

	id := middleware.RequestID(r.Context())

# Responses

	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.SeeOther(w, r, "/")

Errors are plain text. SeeOther answers form posts with 303 so the browser
follows up with a GET.

# Forms

	if err := middleware.ParseForm(w, r); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
