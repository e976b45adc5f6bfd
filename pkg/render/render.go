package render

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer implements echo.Renderer over html/template
type Renderer struct {
	templates *template.Template
}

// New parses all templates matching the glob pattern
func New(glob string) (*Renderer, error) {
	t, err := template.ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template with the given data
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
