// Package site serves the embedded roster dashboard page.
package site

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns the embedded dashboard files.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Register serves the dashboard at / and its assets under /site/.
// Only the exact root is claimed so that API routes keep their 404s.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	files := http.FileServer(FS())
	mux.Handle("GET /{$}", files)
	mux.Handle("GET /site/", http.StripPrefix("/site", files))
}
