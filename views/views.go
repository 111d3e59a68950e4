// Package views holds the HTML templates, embedded into the binary.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Page template names, as passed to gin's Context.HTML.
const (
	PlantsList = "plants_list.html"
	About      = "about.html"
	Create     = "create.html"
	Detail     = "detail.html"
	Edit       = "edit.html"
	Error      = "error.html"
)

// Load parses every page together with the shared header/footer partials.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
