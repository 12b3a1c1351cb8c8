package widget

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Validate(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, validatePath, r.URL.Path)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "key123", body["apiKey"])
			point := body["point"].(map[string]interface{})
			assert.Equal(t, "1234", point["id"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"isValid":true,"errors":[]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "key123", time.Second, nil)
		result, err := c.Validate(context.Background(), Request{
			Point:   Point{ID: "1234"},
			Options: Options{Country: "cz", Weight: 1.5},
		})
		require.NoError(t, err)
		assert.True(t, result.IsValid)
	})

	t.Run("invalid point", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"isValid":false,"errors":[{"code":"PointNotFound","description":"Point not found"},{"code":"Weight","description":"Too heavy"}]}`))
		}))
		defer srv.Close()

		result, err := NewClient(srv.URL, "key", time.Second, nil).Validate(context.Background(), Request{Point: Point{ID: "1"}})
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "Point not found; Too heavy", result.Message())
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, "key", time.Second, nil).Validate(context.Background(), Request{})
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, "key", 20*time.Millisecond, nil).Validate(context.Background(), Request{})
		assert.Error(t, err)
	})
}
