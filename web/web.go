// Package web holds the embedded templates and static assets of the dashboard.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"clementus360/habit-dashboard/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

type Renderer struct {
	templates *template.Template
}

type dashboardVM struct {
	Tasks []types.Task
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) RenderDashboard(w io.Writer, tasks []types.Task) error {
	return r.templates.ExecuteTemplate(w, "index.html", dashboardVM{Tasks: tasks})
}

func (r *Renderer) RenderLogin(w io.Writer) error {
	return r.templates.ExecuteTemplate(w, "login.html", nil)
}

// StaticHandler serves the embedded assets under the given prefix.
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}
