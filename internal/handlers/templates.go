package handlers

import (
	"embed"
	"html/template"
)

// Templates are embedded so a deployment ships a single binary.
//
//go:embed templates/*.gohtml
var templatesFS embed.FS

// LoadTemplates parses the embedded page templates for gin's HTML renderer.
func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"plusOne":  func(n int) int { return n + 1 },
		"minusOne": func(n int) int { return n - 1 },
	}
	return template.New("storefront").Funcs(funcs).ParseFS(templatesFS, "templates/*.gohtml")
}
