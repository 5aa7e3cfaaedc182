package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"threadboard/internal/errors"
)

// Layout is the template every page set executes.
const Layout = "layout.html"

// Templates holds one isolated template set per page, each parsed together
// with the shared layout.
type Templates struct {
	sets map[string]*template.Template
}

// ParseTemplates parses Layout plus each of pages from fsys.
func ParseTemplates(fsys fs.FS, pages ...string) (*Templates, error) {
	sets := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(fsys, Layout, page)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page, err)
		}
		sets[page] = tmpl
	}
	return &Templates{sets: sets}, nil
}

// Render writes page with data and a 200 status.
func (t *Templates) Render(w http.ResponseWriter, name string, data any) error {
	return t.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus executes the named page into a buffer and only writes to w
// once execution succeeded. On failure nothing is written.
func (t *Templates) RenderStatus(w http.ResponseWriter, status int, name string, data any) error {
	const op = "renderer.Render"

	tmpl, ok := t.sets[name]
	if !ok {
		return errors.RenderFailed(op, fmt.Errorf("template %s not found", name))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, Layout, data); err != nil {
		return errors.RenderFailed(op, fmt.Errorf("error executing template %s: %w", name, err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
