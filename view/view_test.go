// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/danielhkuo/cookie-todo/models"
)

func render(t *testing.T, set models.EntrySet) string {
	t.Helper()
	var b strings.Builder
	if err := Render(context.Background(), &b, set); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func TestRender_Empty(t *testing.T) {
	html := render(t, models.EntrySet{})

	if !strings.Contains(html, "<title>Todo | [0 / 0]</title>") {
		t.Errorf("expected [0 / 0] in title, got:\n%s", html)
	}
	if strings.Contains(html, "<li>") {
		t.Error("expected no list items for an empty set")
	}
	if !strings.Contains(html, `action="/new_entry"`) {
		t.Error("expected the new entry form")
	}
}

func TestRender_TwoEntries(t *testing.T) {
	html := render(t, models.EntrySet{
		1: {Finished: true, Name: "B", Description: "x"},
		0: {Name: "A"},
	})

	if !strings.Contains(html, "[1 / 2]") {
		t.Errorf("expected [1 / 2], got:\n%s", html)
	}
	first := strings.Index(html, `action="/update/0"`)
	second := strings.Index(html, `action="/update/1"`)
	if first < 0 || second < 0 {
		t.Fatalf("expected forms for ids 0 and 1, got:\n%s", html)
	}
	if first > second {
		t.Error("expected id 0 before id 1")
	}
	if strings.Count(html, "<li>") != 2 {
		t.Errorf("expected 2 list items, got %d", strings.Count(html, "<li>"))
	}
}

func TestRender_CountsMatchEntries(t *testing.T) {
	tests := []struct {
		name string
		set  models.EntrySet
	}{
		{"none done", models.EntrySet{0: {}, 1: {}, 2: {}}},
		{"all done", models.EntrySet{4: {Finished: true}, 9: {Finished: true}}},
		{"mixed", models.EntrySet{0: {Finished: true}, 3: {}, 5: {Finished: true}, 8: {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, tt.set)

			done, total := 0, len(tt.set)
			for _, e := range tt.set {
				if e.Finished {
					done++
				}
			}
			want := fmt.Sprintf("[%d / %d]", done, total)
			if !strings.Contains(html, "<title>Todo | "+want+"</title>") {
				t.Errorf("expected %s in title, got:\n%s", want, html)
			}
			if got := strings.Count(html, "<li>"); got != total {
				t.Errorf("expected %d list items, got %d", total, got)
			}
		})
	}
}

func TestRender_NumericOrder(t *testing.T) {
	html := render(t, models.EntrySet{10: {}, 2: {}, 1: {}})

	last := -1
	for _, id := range []string{"1", "2", "10"} {
		idx := strings.Index(html, `id="update_`+id+`"`)
		if idx < 0 {
			t.Fatalf("missing form for id %s", id)
		}
		if idx < last {
			t.Errorf("id %s rendered out of order", id)
		}
		last = idx
	}
}

func TestRender_FieldsAndCheckbox(t *testing.T) {
	html := render(t, models.EntrySet{
		0: {Finished: true, Name: "Milk", Description: "2 litres"},
		1: {Name: "Eggs"},
	})

	for _, want := range []string{
		`value="Milk"`,
		`value="2 litres"`,
		`value="Eggs"`,
		`name="finished" value="true" form="update_0" checked>`,
		`name="finished" value="true" form="update_1">`,
		`value="Delete"`,
		`value="Update"`,
		`<input required name="name"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in:\n%s", want, html)
		}
	}
}

func TestRender_EscapesUserText(t *testing.T) {
	html := render(t, models.EntrySet{
		0: {Name: `"><script>alert(1)</script>`, Description: "<b>bold</b> & co"},
	})

	if strings.Contains(html, "<script>") {
		t.Errorf("name was not escaped:\n%s", html)
	}
	if strings.Contains(html, "<b>bold</b>") {
		t.Errorf("description was not escaped:\n%s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag in:\n%s", html)
	}
}
