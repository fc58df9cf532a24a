// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/cookie-todo/cliparse"
	"github.com/danielhkuo/cookie-todo/handlers"
	"github.com/danielhkuo/cookie-todo/middleware"
)

func NewRouter(cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	todoHandler := handlers.NewTodoHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Todo list
	mux.HandleFunc("GET /{$}", middleware.WithLogging(todoHandler.Render))
	mux.HandleFunc("POST /new_entry", middleware.WithLogging(todoHandler.NewEntry))
	mux.HandleFunc("POST /update/{id}", middleware.WithLogging(todoHandler.Update))

	return mux
}
