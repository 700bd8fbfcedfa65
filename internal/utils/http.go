// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for HTTP response writing, HTTP client initialization,
// id_token decoding, identifier generation, and other common operations.
package utils

import (
	"html/template"
	"net/http"
)

var resultPage = template.Must(template.New("result").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body><h3>{{.Title}}</h3><p>{{.Message}}</p></body></html>`))

// WriteHTMLPage renders a minimal HTML page with title and message, escaped,
// and writes it with statusCode. It is what the user's browser shows after a
// redirect lands on the local listener.
//
// Example usage:
//
//	utils.WriteHTMLPage(w, http.StatusOK, "Signed in", "You can close this window.")
func WriteHTMLPage(w http.ResponseWriter, statusCode int, title, message string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return resultPage.Execute(w, struct{ Title, Message string }{title, message})
}
