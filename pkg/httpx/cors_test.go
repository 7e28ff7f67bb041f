package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wad01/wad/pkg/httpx"
)

func TestCORS(t *testing.T) {
	var called int
	h := httpx.CORS(httpx.DefaultCORSConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("preflight short-circuits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/user/profile", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Zero(t, called)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		require.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("headers on normal responses", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/item", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, 1, called)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured origin", func(t *testing.T) {
		cfg := httpx.DefaultCORSConfig()
		cfg.AllowOrigin = "https://app.example.com"
		rec := httptest.NewRecorder()
		httpx.CORS(cfg)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "Origin", rec.Header().Get("Vary"))
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestDecodeJSON(t *testing.T) {
	var v struct{ A int }

	require.ErrorIs(t, httpx.DecodeJSON(http.NoBody, &v), httpx.ErrEmptyBody)
	require.Error(t, httpx.DecodeJSON(strings.NewReader(`{"A":1} {"A":2}`), &v))
	require.Error(t, httpx.DecodeJSON(strings.NewReader(`{"A":`), &v))
	require.NoError(t, httpx.DecodeJSON(strings.NewReader(`{"A":3}`), &v))
	require.Equal(t, 3, v.A)
}
