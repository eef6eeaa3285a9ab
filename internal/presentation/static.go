package presentation

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed web/*
var webFS embed.FS

// MountStatic serves the admin page at / and its assets next to it. The page
// itself is never cached so a redeploy shows up on the next reload.
func MountStatic(r chi.Router) {
	assets, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFileFS(w, req, assets, "index.html")
	})
	r.Handle("/*", http.FileServer(http.FS(assets)))
}
