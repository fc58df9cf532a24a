// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/danielhkuo/cookie-todo/cliparse"
	"github.com/danielhkuo/cookie-todo/codec"
	"github.com/danielhkuo/cookie-todo/middleware"
	"github.com/danielhkuo/cookie-todo/models"
	"github.com/danielhkuo/cookie-todo/store"
	"github.com/danielhkuo/cookie-todo/view"
)

type TodoHandler struct {
	store *store.Store
}

func NewTodoHandler(cfg cliparse.Config) *TodoHandler {
	return &TodoHandler{store: store.New(cfg.StoreOptions())}
}

// CreateEntry allocates an id and stores an empty, unfinished entry under it
func CreateEntry(s *store.Store, jar store.Jar) (models.EntryID, error) {
	id, err := s.NextID(jar)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate entry id: %w", err)
	}
	if err := s.Put(jar, id, models.Entry{}); err != nil {
		return 0, err
	}
	return id, nil
}

// MutateEntry applies an update form to the entry at id.
// Returns store.ErrNotFound when the jar has no such entry.
func MutateEntry(s *store.Store, jar store.Jar, id models.EntryID, form models.UpdateForm) error {
	if !s.Exists(jar, id) {
		return fmt.Errorf("entry %s: %w", id, store.ErrNotFound)
	}

	switch form.Command {
	case models.CommandUpdate:
		return s.Put(jar, id, form.Entry)
	case models.CommandDelete:
		s.Remove(jar, id)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", codec.ErrForm, form.Command)
	}
}

// Render handles GET /
func (h *TodoHandler) Render(w http.ResponseWriter, r *http.Request) {
	set, err := h.store.LoadAll(store.NewHTTPJar(w, r))
	if err != nil {
		slog.Error("failed to load entries",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not read the todo list from cookies")
		return
	}

	// The page is a function of the request's cookies
	w.Header().Set("Cache-Control", "no-store")

	templ.Handler(view.Page(set), templ.WithErrorHandler(renderError)).ServeHTTP(w, r)
}

func renderError(_ *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Error("failed to render page",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
	})
}

// NewEntry handles POST /new_entry
func (h *TodoHandler) NewEntry(w http.ResponseWriter, r *http.Request) {
	id, err := CreateEntry(h.store, store.NewHTTPJar(w, r))
	if err != nil {
		slog.Error("failed to create entry",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	slog.Info("entry created", "entry_id", id)

	middleware.SeeOther(w, r, "/")
}

// Update handles POST /update/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := codec.ParseID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := middleware.ParseForm(w, r); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	form, err := codec.DecodeUpdateForm(r.PostForm)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err = MutateEntry(h.store, store.NewHTTPJar(w, r), id, form)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	case errors.Is(err, store.ErrTooLarge):
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Entry is too large to store")
		return
	case err != nil:
		slog.Error("failed to update entry",
			"request_id", middleware.RequestID(r.Context()),
			"entry_id", id,
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}

	if form.Command == models.CommandDelete {
		slog.Info("entry deleted", "entry_id", id)
	} else {
		slog.Info("entry updated", "entry_id", id, "finished", form.Entry.Finished)
	}

	middleware.SeeOther(w, r, "/")
}
