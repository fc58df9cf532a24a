// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store keeps todo entries in the client's cookie jar.

# Layout

One cookie per entry. The name is the decimal entry id, the value is the
entry encoded by package codec. Cookies named with the "todo_" prefix are
bookkeeping and never read as entries. With values shown decoded:

	0            -> {"finished":false,"name":"Milk","description":""}
	3            -> {"finished":true,"name":"Eggs","description":"a dozen"}
	todo_next_id -> 4

# Jars

Store works on a Jar so it never touches process state. HTTPJar wraps one
request/response pair:

	jar := store.NewHTTPJar(w, r)
	set, err := s.LoadAll(jar)
	err = s.Put(jar, id, entry)
	s.Remove(jar, id)

# Policies

MalformedPolicy: with FailOnMalformed, LoadAll returns the first cookie that
does not parse. With SkipMalformed it logs a warning and leaves it out.

IDPolicy: CounterIDs allocates one past the larger of todo_next_id and the
highest id in the jar, so live ids are never reused. CountIDs uses the
number of entries and can overwrite an entry after a delete.
*/
package store
