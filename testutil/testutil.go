// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/danielhkuo/cookie-todo/cliparse"
	"github.com/danielhkuo/cookie-todo/codec"
	"github.com/danielhkuo/cookie-todo/models"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		CookieMaxAge:    3600,
		IDPolicy:        "counter",
		MalformedPolicy: "fail",
		LogFormat:       "text",
	}
}

// EntryCookie encodes an entry as the cookie a client would send for id
func EntryCookie(t *testing.T, id models.EntryID, entry models.Entry) *http.Cookie {
	t.Helper()

	value, err := codec.Encode(entry)
	if err != nil {
		t.Fatalf("Failed to encode entry: %v", err)
	}
	return &http.Cookie{Name: id.String(), Value: value}
}

// MakeRequest creates an HTTP test request carrying cookies.
// A non-nil form is sent as a urlencoded body.
func MakeRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// UpdateForm builds the fields an entry's form submits
func UpdateForm(entry models.Entry, command models.Command) url.Values {
	form := url.Values{
		"name":        {entry.Name},
		"description": {entry.Description},
		"command":     {string(command)},
	}
	if entry.Finished {
		form.Set("finished", "true")
	}
	return form
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 See Other to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusSeeOther)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %q", location, got)
	}
}

// Browser keeps cookies between requests the way a browser would
type Browser struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func NewBrowser(t *testing.T, handler http.Handler, cookies ...*http.Cookie) *Browser {
	return &Browser{t: t, handler: handler, cookies: slices.Clone(cookies)}
}

// Do sends a request with the current cookies and stores the response's
// Set-Cookie headers
func (b *Browser) Do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, MakeRequest(method, path, form, b.cookies...))

	for _, set := range w.Result().Cookies() {
		b.cookies = slices.DeleteFunc(b.cookies, func(c *http.Cookie) bool {
			return c.Name == set.Name
		})
		if set.MaxAge >= 0 {
			b.cookies = append(b.cookies, &http.Cookie{Name: set.Name, Value: set.Value})
		}
	}

	return w
}

// Cookies returns the cookies the browser currently holds
func (b *Browser) Cookies() []*http.Cookie {
	return slices.Clone(b.cookies)
}

// Cookie returns the named cookie, or nil
func (b *Browser) Cookie(name string) *http.Cookie {
	for _, c := range b.cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
