package assets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	p := Path("css/main.css")
	require.True(t, strings.HasPrefix(p, Prefix+"css/main-"), p)
	require.True(t, strings.HasSuffix(p, ".css"), p)
	require.Equal(t, p, Path("css/main.css"))
}

func TestStaticFilesController(t *testing.T) {
	r := mux.NewRouter()
	NewStaticFilesController(HashFS, true).Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Path("css/main.css"), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), ".menu-tree")
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Prefix+"css/missing.css", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	dev := mux.NewRouter()
	NewStaticFilesController(HashFS, false).Register(dev)
	rec = httptest.NewRecorder()
	dev.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Prefix+"css/main.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
}
