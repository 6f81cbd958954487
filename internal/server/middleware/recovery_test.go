package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/pkg/api"
)

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		handler http.HandlerFunc
		name    string
	}{
		{
			name:    "panic with string",
			handler: func(w http.ResponseWriter, r *http.Request) { panic("something went wrong") },
		},
		{
			name:    "panic with custom type",
			handler: func(w http.ResponseWriter, r *http.Request) { panic(struct{ msg string }{"critical error"}) },
		},
		{
			name: "panic with nil map",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var m map[string]int
				m["x"] = 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			w := httptest.NewRecorder()
			require.NotPanics(t, func() {
				RecoveryMiddleware(logger)(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "internal server error", resp.Message)

			assert.Contains(t, buf.String(), "panic recovered")
			assert.Contains(t, buf.String(), "stack=")
			assert.Contains(t, buf.String(), "path=/boom")
		})
	}
}

func TestRecoveryMiddleware_PassThrough(t *testing.T) {
	h := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRecoveryMiddleware_RepanicsAbortHandler(t *testing.T) {
	h := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("recovery"), mark("logging"), mark("auth"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"recovery", "logging", "auth", "handler"}, order)
}
