// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/cookie-todo/models"
)

var (
	ErrParse = errors.New("parse error")
	ErrForm  = errors.New("form error")
)

// Form field names
const (
	FieldFinished    = "finished"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCommand     = "command"
)

// wireEntry uses pointers so a missing field can be told apart from a zero value
type wireEntry struct {
	Finished    *bool   `json:"finished"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Encode serializes an entry into a cookie-safe string.
// JSON is wrapped in unpadded URL-safe base64 since cookie values
// cannot carry quotes or commas.
func Encode(e models.Entry) (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to encode entry: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Decode parses a cookie value produced by Encode.
// A raw JSON object is accepted too.
func Decode(value string) (models.Entry, error) {
	raw := []byte(value)
	if !strings.HasPrefix(strings.TrimSpace(value), "{") {
		b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(value, "="))
		if err != nil {
			return models.Entry{}, fmt.Errorf("%w: invalid encoding: %v", ErrParse, err)
		}
		raw = b
	}

	var w wireEntry
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Entry{}, fmt.Errorf("%w: invalid entry: %v", ErrParse, err)
	}
	switch {
	case w.Finished == nil:
		return models.Entry{}, fmt.Errorf("%w: missing field %q", ErrParse, FieldFinished)
	case w.Name == nil:
		return models.Entry{}, fmt.Errorf("%w: missing field %q", ErrParse, FieldName)
	case w.Description == nil:
		return models.Entry{}, fmt.Errorf("%w: missing field %q", ErrParse, FieldDescription)
	}

	return models.Entry{
		Finished:    *w.Finished,
		Name:        *w.Name,
		Description: *w.Description,
	}, nil
}

// ParseID parses a canonical decimal entry id, the form EntryID.String
// produces. Signs, whitespace and leading zeros are rejected.
func ParseID(s string) (models.EntryID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || strconv.FormatUint(n, 10) != s {
		return 0, fmt.Errorf("%w: invalid entry id %q", ErrParse, s)
	}
	return models.EntryID(n), nil
}

// DecodeUpdateForm parses the fields of an update form.
// An absent checkbox means not finished.
func DecodeUpdateForm(form url.Values) (models.UpdateForm, error) {
	var f models.UpdateForm

	finished, err := parseCheckbox(form, FieldFinished)
	if err != nil {
		return models.UpdateForm{}, err
	}
	f.Entry.Finished = finished

	if !form.Has(FieldName) {
		return models.UpdateForm{}, fmt.Errorf("%w: %s is required", ErrForm, FieldName)
	}
	f.Entry.Name = form.Get(FieldName)

	if !form.Has(FieldDescription) {
		return models.UpdateForm{}, fmt.Errorf("%w: %s is required", ErrForm, FieldDescription)
	}
	f.Entry.Description = form.Get(FieldDescription)

	if !form.Has(FieldCommand) {
		return models.UpdateForm{}, fmt.Errorf("%w: %s is required", ErrForm, FieldCommand)
	}
	f.Command = models.Command(form.Get(FieldCommand))
	if !f.Command.Valid() {
		return models.UpdateForm{}, fmt.Errorf("%w: unknown command %q", ErrForm, form.Get(FieldCommand))
	}

	return f, nil
}

func parseCheckbox(form url.Values, field string) (bool, error) {
	if !form.Has(field) {
		return false, nil
	}
	switch strings.ToLower(form.Get(field)) {
	case "", "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: invalid %s value %q", ErrForm, field, form.Get(field))
	}
}
