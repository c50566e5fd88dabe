// Package view renders the portal's HTML pages from templates embedded in the binary.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"portal/internal/domain/entity"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer holds one template set per page, each parsed together with the shared layout
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under templates/ and fails on the first broken one
func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(funcs()).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse layout")
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(templateFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || p == layoutFile || path.Ext(p) != ".html" {
			return err
		}

		page, err := layout.Clone()
		if err != nil {
			return errors.WithStack(err)
		}
		if _, err := page.ParseFS(templateFS, p); err != nil {
			return errors.Wrapf(err, "failed to parse %s", p)
		}

		pages[strings.TrimPrefix(p, "templates/")] = page

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{pages: pages}, nil
}

// Render implements echo.Renderer. name is the page path below templates/, e.g. "admin/tenants.html".
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	return errors.WithStack(page.ExecuteTemplate(w, "layout.html", data))
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
		"optMoney": func(d *decimal.Decimal) string {
			return entity.FormatReceiptValue(d)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}

			return t.Format("2006-01-02")
		},
		"datetime": func(t any) string { return entity.FormatReceiptValue(t) },
		"yesno":    func(b bool) string { return entity.FormatReceiptValue(b) },
		"deref": func(id *uint) uint {
			if id == nil {
				return 0
			}

			return *id
		},
	}
}
