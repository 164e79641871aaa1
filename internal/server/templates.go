package server

// Helper for loading HTML templates from disk. Each page template is
// parsed alongside the shared layout so all pages inherit the same
// header and footer.

import (
	"html/template"
	"path/filepath"
)

// LoadTemplates walks the provided directory and parses every HTML
// template found within it, excluding the layout itself. The returned
// map is keyed by the basename of the template file (e.g. "home.html").
// If any template fails to parse, an error is returned.
func LoadTemplates(dir string) (map[string]*template.Template, error) {
	layout := filepath.Join(dir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	m := make(map[string]*template.Template)
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		m[filepath.Base(page)] = t
	}
	return m, nil
}
