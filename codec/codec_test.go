// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codec

import (
	"encoding/base64"
	"errors"
	"net/url"
	"testing"

	"github.com/danielhkuo/cookie-todo/models"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		entry models.Entry
	}{
		{"zero entry", models.Entry{}},
		{"finished", models.Entry{Finished: true, Name: "B", Description: "x"}},
		{"quotes and commas", models.Entry{Name: `say "hi", then leave`, Description: "a;b=c"}},
		{"html", models.Entry{Name: "<script>alert(1)</script>", Description: "&amp;"}},
		{"unicode", models.Entry{Name: "café ☕", Description: "日本語"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Encode(tt.entry)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			// Only URL-safe base64 characters, so the value survives as a cookie
			for _, c := range value {
				ok := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
				if !ok {
					t.Errorf("Encode() produced cookie-unsafe char %q in %q", c, value)
				}
			}

			got, err := Decode(value)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.entry {
				t.Errorf("Decode(Encode()) = %+v, want %+v", got, tt.entry)
			}
		})
	}
}

func TestDecode_RawJSON(t *testing.T) {
	got, err := Decode(`{"finished":true,"name":"A","description":"d"}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := models.Entry{Finished: true, Name: "A", Description: "d"}
	if got != want {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	got, err := Decode(`{"finished":false,"name":"A","description":"","due":"tomorrow"}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Name != "A" {
		t.Errorf("Decode() name = %q, want %q", got.Name, "A")
	}
}

func TestDecode_Errors(t *testing.T) {
	b64 := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"not base64", "!!!"},
		{"base64 of non-json", b64("hello")},
		{"truncated json", `{"finished":true`},
		{"missing finished", b64(`{"name":"A","description":""}`)},
		{"missing name", b64(`{"finished":false,"description":""}`)},
		{"missing description", `{"finished":false,"name":"A"}`},
		{"finished not boolean", `{"finished":"yes","name":"A","description":""}`},
		{"finished null", `{"finished":null,"name":"A","description":""}`},
		{"json array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.value)
			if err == nil {
				t.Fatal("Decode() expected error, got nil")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Decode() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    models.EntryID
		wantErr bool
	}{
		{"0", 0, false},
		{"3", 3, false},
		{"007", 0, true},
		{"18446744073709551615", 18446744073709551615, false},
		{"", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{" 1", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
		{"todo_next_id", 0, true},
		{"18446744073709551616", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Errorf("ParseID(%q) error = %v, want ErrParse", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeUpdateForm(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		want    models.UpdateForm
		wantErr bool
	}{
		{
			name: "update with checkbox",
			form: url.Values{"finished": {"true"}, "name": {"n"}, "description": {"d"}, "command": {"Update"}},
			want: models.UpdateForm{Entry: models.Entry{Finished: true, Name: "n", Description: "d"}, Command: models.CommandUpdate},
		},
		{
			name: "browser checkbox value on",
			form: url.Values{"finished": {"on"}, "name": {"n"}, "description": {""}, "command": {"Update"}},
			want: models.UpdateForm{Entry: models.Entry{Finished: true, Name: "n"}, Command: models.CommandUpdate},
		},
		{
			name: "absent checkbox is unfinished",
			form: url.Values{"name": {"n"}, "description": {"d"}, "command": {"Update"}},
			want: models.UpdateForm{Entry: models.Entry{Name: "n", Description: "d"}, Command: models.CommandUpdate},
		},
		{
			name: "explicit false",
			form: url.Values{"finished": {"false"}, "name": {"n"}, "description": {"d"}, "command": {"Update"}},
			want: models.UpdateForm{Entry: models.Entry{Name: "n", Description: "d"}, Command: models.CommandUpdate},
		},
		{
			name: "delete",
			form: url.Values{"name": {""}, "description": {""}, "command": {"Delete"}},
			want: models.UpdateForm{Command: models.CommandDelete},
		},
		{
			name:    "unknown command",
			form:    url.Values{"name": {"n"}, "description": {"d"}, "command": {"Archive"}},
			wantErr: true,
		},
		{
			name:    "command is case sensitive",
			form:    url.Values{"name": {"n"}, "description": {"d"}, "command": {"update"}},
			wantErr: true,
		},
		{
			name:    "missing command",
			form:    url.Values{"name": {"n"}, "description": {"d"}},
			wantErr: true,
		},
		{
			name:    "missing name",
			form:    url.Values{"description": {"d"}, "command": {"Update"}},
			wantErr: true,
		},
		{
			name:    "missing description",
			form:    url.Values{"name": {"n"}, "command": {"Update"}},
			wantErr: true,
		},
		{
			name:    "bad checkbox value",
			form:    url.Values{"finished": {"maybe"}, "name": {"n"}, "description": {"d"}, "command": {"Update"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeUpdateForm(tt.form)
			if tt.wantErr {
				if !errors.Is(err, ErrForm) {
					t.Errorf("DecodeUpdateForm() error = %v, want ErrForm", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeUpdateForm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeUpdateForm() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
