// Package pages serves the browser UI: six server-rendered pages sharing one
// layout, plus the script and stylesheet they load. The pages talk to the
// JSON API under /api; they hold no state of their own.
package pages

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page describes one navigable page.
type Page struct {
	Path  string
	File  string
	Title string
	Nav   string
}

// All lists the pages in navigation order.
var All = []Page{
	{Path: "/", File: "home.html", Title: "Holistiq", Nav: "Home"},
	{Path: "/exercise", File: "exercise.html", Title: "Exercise", Nav: "Exercise"},
	{Path: "/yoga", File: "yoga.html", Title: "Yoga & Meditation", Nav: "Yoga"},
	{Path: "/recipes", File: "recipes.html", Title: "Healthy Recipes", Nav: "Recipes"},
	{Path: "/mental-health", File: "mental_health.html", Title: "Mental Health", Nav: "Mental Health"},
	{Path: "/reports", File: "reports.html", Title: "Reports", Nav: "Reports"},
}

type view struct {
	Page
	Pages []Page
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	sets map[string]*template.Template
}

// New parses every page against the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{sets: make(map[string]*template.Template, len(All))}
	for _, p := range All {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+p.File)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p.File, err)
		}
		r.sets[p.Path] = t
	}
	return r, nil
}

// MustNew is New for package-embedded templates, which cannot fail at runtime
// once they parse in tests.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Register mounts the pages and /static on rg.
func (r *Renderer) Register(rg gin.IRoutes) {
	for _, p := range All {
		p := p
		rg.GET(p.Path, func(c *gin.Context) { r.render(c, p) })
	}
	sub, _ := fs.Sub(staticFS, "static")
	rg.StaticFS("/static", http.FS(sub))
}

func (r *Renderer) render(c *gin.Context, p Page) {
	c.Render(http.StatusOK, render.HTML{
		Template: r.sets[p.Path],
		Name:     "layout",
		Data:     view{Page: p, Pages: All},
	})
}
