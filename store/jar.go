// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"net/http"
	"slices"
	"strings"
)

// Jar is the client's cookie jar for one request/response exchange.
type Jar interface {
	// Cookies returns the cookies currently in the jar
	Cookies() []*http.Cookie
	// SetCookie adds or replaces a cookie. MaxAge < 0 removes it.
	SetCookie(c *http.Cookie)
}

// HTTPJar reads the request's cookies and writes Set-Cookie headers to the
// response. Writes are reflected in later reads within the same request.
type HTTPJar struct {
	w       http.ResponseWriter
	cookies []*http.Cookie
}

func NewHTTPJar(w http.ResponseWriter, r *http.Request) *HTTPJar {
	return &HTTPJar{w: w, cookies: headerCookies(r.Header)}
}

// headerCookies splits the Cookie headers into name/value pairs. Unlike
// r.Cookies() it keeps values containing '"' or ',', such as entries stored
// as raw JSON.
func headerCookies(h http.Header) []*http.Cookie {
	var cookies []*http.Cookie
	for _, line := range h.Values("Cookie") {
		for part := range strings.SplitSeq(line, ";") {
			name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				continue
			}
			cookies = append(cookies, &http.Cookie{Name: name, Value: value})
		}
	}
	return cookies
}

func (j *HTTPJar) Cookies() []*http.Cookie {
	return slices.Clone(j.cookies)
}

func (j *HTTPJar) SetCookie(c *http.Cookie) {
	http.SetCookie(j.w, c)
	j.cookies = slices.DeleteFunc(j.cookies, func(old *http.Cookie) bool {
		return old.Name == c.Name
	})
	if c.MaxAge >= 0 {
		j.cookies = append(j.cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
}

// MemoryJar is a Jar without a transport, for callers that hold cookies
// themselves.
type MemoryJar struct {
	cookies []*http.Cookie
}

func NewMemoryJar(cookies ...*http.Cookie) *MemoryJar {
	return &MemoryJar{cookies: slices.Clone(cookies)}
}

func (j *MemoryJar) Cookies() []*http.Cookie {
	return slices.Clone(j.cookies)
}

func (j *MemoryJar) SetCookie(c *http.Cookie) {
	j.cookies = slices.DeleteFunc(j.cookies, func(old *http.Cookie) bool {
		return old.Name == c.Name
	})
	if c.MaxAge >= 0 {
		j.cookies = append(j.cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
}

func isInternal(name string) bool {
	return strings.HasPrefix(name, internalPrefix)
}
