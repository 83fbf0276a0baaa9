package handler

import (
	"html/template"
	"log/slog"
	"net/http"
)

// The admin UI proper is a separate frontend; these shells exist so the
// guarded page routes have something to serve and the login redirect has
// somewhere to land.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body><h1>{{.Title}}</h1></body>
</html>
`))

// PageHandler serves the minimal HTML page shells.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Shell returns a handler serving a titled page shell.
func (h *PageHandler) Shell(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, struct{ Title string }{Title: title}); err != nil {
			slog.Error("failed to render page", "title", title, "error", err)
		}
	}
}
