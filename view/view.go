// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"context"
	_ "embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/danielhkuo/cookie-todo/models"
)

//go:embed templates/page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type item struct {
	ID    models.EntryID
	Entry models.Entry
}

type pageData struct {
	Done  int
	Total int
	Items []item
}

func newPageData(set models.EntrySet) pageData {
	done, total := set.Counts()
	data := pageData{Done: done, Total: total, Items: make([]item, 0, total)}
	for _, id := range set.IDs() {
		data.Items = append(data.Items, item{ID: id, Entry: set[id]})
	}
	return data
}

// Page is the todo list document for set
func Page(set models.EntrySet) templ.Component {
	return templ.FromGoHTML(pageTemplate, newPageData(set))
}

// Render writes the todo list document for set to w
func Render(ctx context.Context, w io.Writer, set models.EntrySet) error {
	return Page(set).Render(ctx, w)
}
