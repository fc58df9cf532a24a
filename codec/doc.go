// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codec converts todo entries to and from cookie values and form fields.

# Cookie Values

An entry is stored as a JSON object with the fields finished, name and
description, encoded as URL-safe base64 without padding:

	value, err := codec.Encode(entry)
	entry, err := codec.Decode(value)

Decode also accepts the bare JSON object. It fails with ErrParse when the
value is not valid JSON, a field is missing, or finished is not a boolean.
Unknown fields are ignored.

# Entry IDs

Cookie names and the {id} path segment are decimal integers:

	id, err := codec.ParseID("3")

# Update Forms

	form, err := codec.DecodeUpdateForm(r.PostForm)

The finished checkbox is optional; name, description and command are
required. Command must be "Update" or "Delete". Failures wrap ErrForm.
*/
package codec
