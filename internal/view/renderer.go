package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"

	"msgboard/internal/auth"
)

//go:embed templates
var templatesFS embed.FS

// Renderer renders the embedded page templates. Each page is parsed together
// with the shared layout and addressed by its path without extension,
// e.g. "users/index".
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New parses all embedded templates.
func New() (*Renderer, error) {
	layout, err := template.New("layout").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := map[string]*template.Template{}
	err = fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path == "templates/layout.html" {
			return err
		}
		page, err := layout.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(templatesFS, path); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{pages: pages}, nil
}

// Render implements echo.Renderer. When data is an echo.Map the session
// user id is added under "CurrentUserID" for the navigation bar.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	if m, ok := data.(echo.Map); ok && c != nil {
		if id, ok := auth.CurrentUserID(c); ok {
			m["CurrentUserID"] = id
		}
	}
	return page.ExecuteTemplate(w, "layout", data)
}

var funcs = template.FuncMap{
	"fieldError": func(errs interface{}, field string) string {
		m, _ := errs.(map[string]string)
		return m[field]
	},
}
