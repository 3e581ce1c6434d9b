package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/commerce-admin/modules/pages"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/controllers"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/controllers/dtos"
	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/graphql"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
)

const pageListResponse = `{
	"pages": {
		"edges": [
			{"node": {"id": "p1", "title": "About us", "slug": "about", "isPublished": true,
				"pageType": {"id": "t1", "name": "Blog", "slug": "blog"}}}
		],
		"pageInfo": {"hasNextPage": true, "hasPreviousPage": false, "startCursor": "a", "endCursor": "b"},
		"totalCount": 21
	}
}`

const pageTypesResponse = `{
	"search": {
		"edges": [
			{"node": {"id": "t1", "name": "Blog", "slug": "blog"}},
			{"node": {"id": "t2", "name": "Docs", "slug": "docs"}}
		],
		"pageInfo": {"endCursor": "t2", "hasNextPage": true}
	}
}`

type routingDoer struct {
	responses map[string]string
	requests  []*graphql.Request
}

func (d *routingDoer) Do(ctx context.Context, req *graphql.Request, out interface{}) error {
	d.requests = append(d.requests, req)
	return json.Unmarshal([]byte(d.responses[req.OperationName]), out)
}

func setup(t *testing.T, store filters.TabStore) (*mux.Router, *routingDoer) {
	t.Helper()
	doer := &routingDoer{responses: map[string]string{
		"PageList":        pageListResponse,
		"SearchPageTypes": pageTypesResponse,
	}}
	log := logrus.New()
	log.SetOutput(io.Discard)
	app := application.New(&application.ApplicationOptions{
		GraphQL:  doer,
		EventBus: eventbus.NewEventPublisher(log),
	})
	require.NoError(t, pages.NewModule(pages.ModuleOptions{
		PageSize:    20,
		MaxPageSize: 100,
		PresetStore: store,
		Flash:       notifier.NewFlashStore("flash", nil),
	}).Register(app))

	r := mux.NewRouter().UseEncodedPath()
	for _, c := range app.Controllers() {
		c.Register(r)
	}
	return r, doer
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPagesController_List(t *testing.T) {
	r, doer := setup(t, filters.NewMemoryTabStore())

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/pages?pageTypes=t1&sort=slug&asc=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<!DOCTYPE html>")
	require.Contains(t, body, "About us")
	require.Contains(t, body, "Model types")
	require.Contains(t, body, `value="t1" checked`)
	require.Contains(t, body, "/pages?after=b")

	var list *graphql.Request
	for _, req := range doer.requests {
		if req.OperationName == "PageList" {
			list = req
		}
	}
	require.NotNil(t, list)
	require.Equal(t, map[string]interface{}{"field": "SLUG", "direction": "ASC"}, list.Variables["sort"])
	require.Equal(t, map[string]interface{}{"pageTypes": []string{"t1"}}, list.Variables["filter"])
}

func TestPagesController_ListFragment(t *testing.T) {
	r, doer := setup(t, filters.NewMemoryTabStore())

	req := httptest.NewRequest(http.MethodGet, "/pages?query=about", nil)
	req.Header.Set("Hx-Request", "true")
	rec := serve(r, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "<!DOCTYPE html>")
	require.Contains(t, rec.Body.String(), `id="pages-list"`)
	require.Len(t, doer.requests, 1, "fragments skip the filter panel queries")
}

func TestPagesController_PageTypes(t *testing.T) {
	r, doer := setup(t, filters.NewMemoryTabStore())

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/pages/page-types?index=0&search=do&filters%5B0%5D.value=t9", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `value="t9"`)
	require.Contains(t, body, "Docs")
	require.NotContains(t, body, ">Blog<", "ranking drops non-matching options")
	require.Contains(t, body, "after=t2")
	require.Equal(t, "do", doer.requests[0].Variables["query"])

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/pages/page-types?index=-1", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPagesController_ApplyFilters(t *testing.T) {
	r, _ := setup(t, filters.NewMemoryTabStore())

	rec := serve(r, postForm("/pages/filters", url.Values{
		"filters[0].name":   {"pageTypes"},
		"filters[0].active": {"true"},
		"filters[0].value":  {"t1", "t2"},
		"filters[1].name":   {"collections"},
		"filters[1].active": {"true"},
		"filters[1].value":  {"c1"},
		"query":             {"faq"},
	}))
	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/pages", loc.Path)
	require.Equal(t, []string{"t1", "t2"}, loc.Query()["pageTypes"])
	require.Equal(t, "faq", loc.Query().Get("query"))
	require.NotContains(t, loc.Query(), "collections")

	rec = serve(r, postForm("/pages/filters", url.Values{
		"filters[0].name":  {"pageTypes"},
		"filters[0].value": {"t1"},
	}))
	require.Equal(t, "/pages", rec.Header().Get("Location"))
}

func TestApplyFiltersURL(t *testing.T) {
	u := controllers.ApplyFiltersURL(&dtos.ApplyFiltersDTO{
		Filters: []dtos.FilterElementDTO{{Name: "pageTypes", Active: true}},
		Sort:    "title",
	})
	loc, err := url.Parse(u)
	require.NoError(t, err)
	require.Equal(t, "title", loc.Query().Get("sort"))
}

func TestPagesController_Presets(t *testing.T) {
	store := filters.NewMemoryTabStore()
	r, _ := setup(t, store)

	rec := serve(r, postForm("/pages/presets", url.Values{
		"name": {"Blog only"},
		"data": {"pageTypes=t1&after=zz"},
	}))
	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "1", loc.Query().Get(filters.ActiveTabParam))
	require.Equal(t, "t1", loc.Query().Get("pageTypes"))

	tabs, err := pagesTabs(store)
	require.NoError(t, err)
	require.Equal(t, []filters.Tab{{Name: "Blog only", Data: "pageTypes=t1"}}, tabs)

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/pages?pageTypes=t1&activeTab=1", nil))
	require.Contains(t, rec.Body.String(), "Blog only")
	require.Contains(t, rec.Body.String(), "/pages/presets/1/delete")

	rec = serve(r, postForm("/pages/presets", url.Values{"data": {"pageTypes=t1"}}))
	require.Equal(t, http.StatusFound, rec.Code)
	tabs, _ = pagesTabs(store)
	require.Len(t, tabs, 1, "preset without a name is rejected")

	rec = serve(r, postForm("/pages/presets/1/delete", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	tabs, _ = pagesTabs(store)
	require.Empty(t, tabs)

	rec = serve(r, postForm("/pages/presets/5/delete", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func pagesTabs(store filters.TabStore) ([]filters.Tab, error) {
	return filters.NewTabUtils("pagesFilters", store).GetFilterTabs(context.Background())
}
