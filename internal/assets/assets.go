// Package assets embeds the static files of the admin shell and serves them
// under content hashed names.
package assets

import (
	"embed"
	"net/http"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/iota-uz/commerce-admin/pkg/application"
)

const Prefix = "/assets/"

//go:embed css
var files embed.FS

var HashFS = hashfs.NewFS(files)

// Path returns the URL of name with its content hash, e.g.
// /assets/css/main-<hash>.css.
func Path(name string) string {
	return Prefix + HashFS.HashName(name)
}

type StaticFilesController struct {
	fs         *hashfs.FS
	production bool
}

func NewStaticFilesController(fs *hashfs.FS, production bool) application.Controller {
	return &StaticFilesController{fs: fs, production: production}
}

func (c *StaticFilesController) Key() string {
	return Prefix
}

// Register serves hashed names as immutable. Outside production unhashed
// names are served with caching disabled so edits show up on reload.
func (c *StaticFilesController) Register(r *mux.Router) {
	files := http.StripPrefix(Prefix, hashfs.FileServer(c.fs))
	r.PathPrefix(Prefix).Methods(http.MethodGet, http.MethodHead).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.production {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}
		files.ServeHTTP(w, r)
	}))
}
