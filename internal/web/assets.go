package web

import (
	"embed"
	"io/fs"
	"net/http"

	"threadboard/internal/web/renderer"
)

//go:embed static
var staticFiles embed.FS

//go:embed templates
var templateFiles embed.FS

// Pages are the template sets the server renders.
var Pages = []string{"index.html", "thread.html", "error.html"}

// StaticFileServer serves the embedded static directory.
func StaticFileServer() http.Handler {
	fsys, _ := fs.Sub(staticFiles, "static")
	return http.FileServer(http.FS(fsys))
}

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*renderer.Templates, error) {
	fsys, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, err
	}
	return renderer.ParseTemplates(fsys, Pages...)
}
