package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/commerce-admin/pkg/composables"
)

func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("decodes data and sends headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			require.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

			var req Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "MenuDetails", req.OperationName)
			require.Equal(t, "menu-1", req.Variables["id"])

			_, _ = w.Write([]byte(`{"data":{"menu":{"id":"menu-1","name":"Footer"}}}`))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(srv.URL, WithToken(" secret "))
		ctx := composables.WithRequestID(context.Background(), "req-1")
		var out struct {
			Menu struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"menu"`
		}
		err := c.Do(ctx, &Request{
			Query:         "query MenuDetails($id: ID!) { menu(id: $id) { id name } }",
			OperationName: "MenuDetails",
			Variables:     map[string]interface{}{"id": "menu-1"},
		}, &out)
		require.NoError(t, err)
		require.Equal(t, "Footer", out.Menu.Name)
	})

	t.Run("generates request id when context has none", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NotEmpty(t, r.Header.Get("X-Correlation-ID"))
			require.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"data":null}`))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(srv.URL, WithRequestIDHeader("X-Correlation-ID"))
		require.NoError(t, c.Do(context.Background(), &Request{Query: "{ __typename }"}, nil))
	})

	t.Run("top-level errors become ResponseError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"boom"},{"message":"bang"}]}`))
		}))
		t.Cleanup(srv.Close)

		err := NewClient(srv.URL).Do(context.Background(), &Request{OperationName: "MenuDelete"}, nil)
		var respErr *ResponseError
		require.True(t, errors.As(err, &respErr))
		require.Len(t, respErr.Errors, 2)
		require.Equal(t, "MenuDelete: graphql: boom; bang", err.Error())
	})

	t.Run("non-json error status becomes StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)

		err := NewClient(srv.URL).Do(context.Background(), &Request{OperationName: "PageList"}, nil)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
		require.Equal(t, "bad gateway", statusErr.Body)
	})

	t.Run("transport failure is wrapped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		err := NewClient(srv.URL).Do(context.Background(), &Request{OperationName: "PageList"}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "PageList: http do")
	})
}
