package shared

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"
)

var (
	Decoder = form.NewDecoder()
	Encoder = form.NewEncoder()
)

// PathVar returns the route variable name, unescaped. Routers match on the
// encoded path so that ids containing "/" stay in one segment, which leaves
// the variables escaped.
func PathVar(r *http.Request, name string) string {
	v := mux.Vars(r)[name]
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// ParseID returns the trimmed {id} route variable. Ids in the commerce API are
// opaque base64 strings, so nothing beyond emptiness is checked.
func ParseID(r *http.Request) (string, bool) {
	id := strings.TrimSpace(PathVar(r, "id"))
	return id, id != ""
}

// IsHxRequest reports whether r was issued by htmx.
func IsHxRequest(r *http.Request) bool {
	return len(r.Header.Get("Hx-Request")) > 0
}

// Redirect sends the client to path. htmx requests get an HX-Redirect header
// instead of a 3xx so the browser performs a full navigation.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	if IsHxRequest(r) {
		w.Header().Add("Hx-Redirect", path)
		return
	}
	http.Redirect(w, r, path, http.StatusFound)
}

// Replace navigates to path without adding a history entry.
func Replace(w http.ResponseWriter, r *http.Request, path string) {
	if IsHxRequest(r) {
		w.Header().Add("Hx-Replace-Url", path)
		w.Header().Add("Hx-Location", path)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// WithQuery joins path and an encoded query string, dropping the "?" when
// the query is empty.
func WithQuery(path string, q url.Values) string {
	encoded := q.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
