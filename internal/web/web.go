// Package web holds the browser rendition of the contact form.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Static serves the form script and stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embed 경로가 고정이라 발생하지 않음
	}
	return http.FS(sub)
}

type PageData struct {
	Title      string
	SubmitPath string
}
