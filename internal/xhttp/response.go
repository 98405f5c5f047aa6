package xhttp

import (
	"bytes"
	"net/http"

	go_json "github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteHTML writes a fully rendered page. Rendering into a buffer first keeps
// template failures from producing half-written responses.
func WriteHTML(w http.ResponseWriter, status int, body *bytes.Buffer) {
	SetHeaderContentTypeTextHTML(w)
	w.WriteHeader(status)
	_, _ = body.WriteTo(w)
}
