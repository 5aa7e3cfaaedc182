package renderer

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadboard/internal/errors"
)

func TestContent(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		out, err := Content("hello world")
		require.NoError(t, err)
		assert.Contains(t, out, "hello world")
	})

	t.Run("source blocks are highlighted", func(t *testing.T) {
		out, err := Content("#+BEGIN_SRC go\nfunc main() {}\n#+END_SRC\n")
		require.NoError(t, err)
		assert.Contains(t, out, `class="chroma"`)
		assert.Contains(t, out, "main")
	})

	t.Run("raw html is sanitized", func(t *testing.T) {
		out, err := Content("#+BEGIN_EXPORT html\n<script>alert(1)</script><b>bold</b>\n#+END_EXPORT\n")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
		assert.Contains(t, out, "bold")
	})
}

var testFS = fstest.MapFS{
	"layout.html": {Data: []byte(`<main>{{template "content" .}}</main>`)},
	"page.html":   {Data: []byte(`{{define "content"}}hi {{.Name}}{{end}}`)},
	"broken.html": {Data: []byte(`{{define "content"}}{{.Missing}}{{end}}`)},
}

type pageData struct {
	Name string
}

func TestParseTemplatesMissingFile(t *testing.T) {
	_, err := ParseTemplates(testFS, "nope.html")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	tmpls, err := ParseTemplates(testFS, "page.html", "broken.html")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		rr := httptest.NewRecorder()

		err := tmpls.Render(rr, "page.html", pageData{Name: "<bob>"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Equal(t, "<main>hi &lt;bob&gt;</main>", rr.Body.String())
	})

	t.Run("custom status", func(t *testing.T) {
		rr := httptest.NewRecorder()

		err := tmpls.RenderStatus(rr, http.StatusNotFound, "page.html", pageData{Name: "x"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("execution failure writes nothing", func(t *testing.T) {
		rr := httptest.NewRecorder()

		err := tmpls.Render(rr, "broken.html", pageData{Name: "x"})

		require.Error(t, err)
		assert.Equal(t, errors.Render, errors.KindOf(err))
		assert.Empty(t, rr.Body.String())
		assert.Empty(t, rr.Header().Get("Content-Type"))
	})

	t.Run("unknown page", func(t *testing.T) {
		rr := httptest.NewRecorder()

		err := tmpls.Render(rr, "other.html", nil)

		assert.Equal(t, errors.Render, errors.KindOf(err))
		assert.Empty(t, rr.Body.String())
	})
}
