// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/danielhkuo/cookie-todo/codec"
	"github.com/danielhkuo/cookie-todo/models"
)

var (
	ErrNotFound     = errors.New("entry not found")
	ErrTooLarge     = errors.New("entry too large for a cookie")
	ErrIDsExhausted = errors.New("no entry ids left")
)

const (
	internalPrefix = models.InternalCookiePrefix

	// NextIDCookie holds the next id to allocate under the counter policy
	NextIDCookie = internalPrefix + "next_id"

	// Every route reads the whole list, so cookies must reach all of them
	cookiePath = "/"

	// Browsers drop cookies over 4096 bytes (name + value + attributes)
	maxCookieBytes = 4000
)

// MalformedPolicy decides what LoadAll does with a cookie it cannot parse.
type MalformedPolicy string

const (
	FailOnMalformed MalformedPolicy = "fail"
	SkipMalformed   MalformedPolicy = "skip"
)

// IDPolicy decides how NextID picks a new entry id.
type IDPolicy string

const (
	// CounterIDs never hands out an id that is in the jar
	CounterIDs IDPolicy = "counter"
	// CountIDs uses the number of entries in the jar. After a delete the new
	// id can collide with an existing entry and overwrite it.
	CountIDs IDPolicy = "count"
)

func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch p := MalformedPolicy(s); p {
	case FailOnMalformed, SkipMalformed:
		return p, nil
	}
	return "", fmt.Errorf("invalid malformed cookie policy %q (want %q or %q)", s, FailOnMalformed, SkipMalformed)
}

func ParseIDPolicy(s string) (IDPolicy, error) {
	switch p := IDPolicy(s); p {
	case CounterIDs, CountIDs:
		return p, nil
	}
	return "", fmt.Errorf("invalid id policy %q (want %q or %q)", s, CounterIDs, CountIDs)
}

// Options configure the cookies a Store writes and how it reads them.
type Options struct {
	MaxAge    int // seconds; 0 writes session cookies
	Secure    bool
	Malformed MalformedPolicy
	IDs       IDPolicy
}

// Store maps entries onto a cookie jar. It holds only configuration and is
// safe to share between requests.
type Store struct {
	opts Options
}

func New(opts Options) *Store {
	if opts.Malformed == "" {
		opts.Malformed = FailOnMalformed
	}
	if opts.IDs == "" {
		opts.IDs = CounterIDs
	}
	return &Store{opts: opts}
}

// LoadAll rebuilds the entry set from every non-internal cookie in the jar.
func (s *Store) LoadAll(jar Jar) (models.EntrySet, error) {
	set := make(models.EntrySet)
	for _, c := range jar.Cookies() {
		if isInternal(c.Name) {
			continue
		}

		id, err := codec.ParseID(c.Name)
		if err == nil {
			var entry models.Entry
			entry, err = codec.Decode(c.Value)
			if err == nil {
				set[id] = entry
				continue
			}
		}

		if s.opts.Malformed == SkipMalformed {
			slog.Warn("skipping malformed cookie", "cookie", c.Name, "error", err)
			continue
		}
		return nil, fmt.Errorf("cookie %q: %w", c.Name, err)
	}
	return set, nil
}

// Exists reports whether the jar has a cookie for id
func (s *Store) Exists(jar Jar, id models.EntryID) bool {
	name := id.String()
	for _, c := range jar.Cookies() {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Put writes entry into the cookie named by id, replacing any previous value
func (s *Store) Put(jar Jar, id models.EntryID, entry models.Entry) error {
	value, err := codec.Encode(entry)
	if err != nil {
		return err
	}
	name := id.String()
	if len(name)+len(value) > maxCookieBytes {
		return fmt.Errorf("entry %s: %w", name, ErrTooLarge)
	}
	s.setCookie(jar, name, value, s.opts.MaxAge)
	return nil
}

// Remove expires the cookie named by id
func (s *Store) Remove(jar Jar, id models.EntryID) {
	s.setCookie(jar, id.String(), "", -1)
}

// NextID picks the id for a new entry according to the id policy.
// Under the counter policy the allocation is recorded in NextIDCookie.
func (s *Store) NextID(jar Jar) (models.EntryID, error) {
	if s.opts.IDs == CountIDs {
		var n models.EntryID
		for _, c := range jar.Cookies() {
			if !isInternal(c.Name) {
				n++
			}
		}
		return n, nil
	}

	var next models.EntryID
	for _, c := range jar.Cookies() {
		if c.Name == NextIDCookie {
			n, err := codec.ParseID(c.Value)
			if err != nil {
				if s.opts.Malformed == SkipMalformed {
					slog.Warn("ignoring malformed id counter", "cookie", c.Name, "error", err)
					continue
				}
				return 0, fmt.Errorf("cookie %q: %w", c.Name, err)
			}
			next = max(next, n)
			continue
		}
		if isInternal(c.Name) {
			continue
		}
		// Names that are not ids are reported by LoadAll
		id, err := codec.ParseID(c.Name)
		if err != nil {
			continue
		}
		if id == math.MaxUint64 {
			return 0, ErrIDsExhausted
		}
		next = max(next, id+1)
	}
	if next == math.MaxUint64 {
		return 0, ErrIDsExhausted
	}

	s.setCookie(jar, NextIDCookie, (next + 1).String(), s.opts.MaxAge)
	return next, nil
}

func (s *Store) setCookie(jar Jar, name, value string, maxAge int) {
	jar.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cookiePath,
		MaxAge:   maxAge,
		Secure:   s.opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
