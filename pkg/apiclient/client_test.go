package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paverbrasil/paveradmin/internal"
	"github.com/stretchr/testify/assert"
)

func TestClient_OnUnauthorized(t *testing.T) {
	t.Run("hook fires on the exact unauthorized message", func(t *testing.T) {
		// arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": internal.UnauthorizedMessage})
		}))
		defer srv.Close()

		c, err := New(srv.URL)
		assert.NoError(t, err)
		fired := false
		c.OnUnauthorized = func() { fired = true }

		// act
		_, err = c.ListClients(context.Background())

		// assert
		assert.True(t, fired)
		apiErr, ok := err.(*APIError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.True(t, apiErr.Unauthorized())
	})
	t.Run("hook does not fire on other unauthorized messages", func(t *testing.T) {
		// arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid username or password"})
		}))
		defer srv.Close()

		c, err := New(srv.URL)
		assert.NoError(t, err)
		fired := false
		c.OnUnauthorized = func() { fired = true }

		// act
		_, err = c.Login(context.Background(), "claudineifrogo", "wrongpassword")

		// assert
		assert.False(t, fired)
		apiErr, ok := err.(*APIError)
		assert.True(t, ok)
		assert.False(t, apiErr.Unauthorized())
	})
	t.Run("hook does not fire on other status codes", func(t *testing.T) {
		// arrange
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "something went terribly wrong"})
		}))
		defer srv.Close()

		c, err := New(srv.URL)
		assert.NoError(t, err)
		fired := false
		c.OnUnauthorized = func() { fired = true }

		// act
		_, err = c.ListNotes(context.Background())

		// assert
		assert.False(t, fired)
		apiErr, ok := err.(*APIError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})
}

func TestClient_SessionCookieRoundTrip(t *testing.T) {
	t.Run("cookie set at login rides along on later calls", func(t *testing.T) {
		// arrange
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: internal.SessionCookie, Value: "abc", Path: "/"})
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"success": true, "user": map[string]any{"id": 1}})
		})
		var gotCookie string
		mux.HandleFunc("GET /api/clients", func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(internal.SessionCookie); err == nil {
				gotCookie = cookie.Value
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]any{})
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		c, err := New(srv.URL)
		assert.NoError(t, err)

		// act
		result, err := c.Login(context.Background(), "claudineifrogo", "paverbrasil2026")
		assert.NoError(t, err)
		_, err = c.ListClients(context.Background())

		// assert
		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "abc", gotCookie)
	})
}
