// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an httpItemsClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpItemsClient {
	t.Helper()

	c, err := NewHTTPItemsClient(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c.(*httpItemsClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPItemsClient_BaseURL(t *testing.T) {
	tests := []struct {
		address string
		want    string
		wantErr bool
	}{
		{address: "localhost:8000", want: "http://localhost:8000"},
		{address: "https://api.example.com/", want: "https://api.example.com"},
		{address: "  ", wantErr: true},
		{address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			c, err := NewHTTPItemsClient(tt.address, 0, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.(*httpItemsClient).client.BaseURL)
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var credential models.Credential
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credential))
		assert.Equal(t, "alice", credential.Username)

		writeJSON(t, w, http.StatusOK, models.TokenResponse{AccessToken: "jwt", TokenType: models.TokenType})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	token, err := c.Login(context.Background(), models.Credential{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", token.AccessToken)
	assert.Equal(t, "jwt", c.Token())
}

func TestLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "invalid username or password"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.Credential{Username: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid username or password")
	assert.Empty(t, c.Token())
}

func TestItemRequests_SendBearerToken(t *testing.T) {
	widget := models.Item{ID: 5, Name: "Widget", Price: 100, Company: "Acme Corp", Remarks: "-"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/item/5":
			writeJSON(t, w, http.StatusOK, widget)
		case r.Method == http.MethodGet && r.URL.Path == "/api/items/Acme Corp":
			assert.Equal(t, "true", r.URL.Query().Get("all"))
			writeJSON(t, w, http.StatusOK, []models.Item{widget})
		case r.Method == http.MethodPost && r.URL.Path == "/api/item":
			var item models.Item
			require.NoError(t, json.NewDecoder(r.Body).Decode(&item))
			item.ID = 6
			writeJSON(t, w, http.StatusOK, item)
		case r.Method == http.MethodPut && r.URL.Path == "/api/item":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/item/5":
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := newTestClient(t, srv.URL)
	c.SetToken(" jwt ")

	got, err := c.GetItem(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, widget, got)

	list, err := c.ListItems(ctx, "Acme Corp", true)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{widget}, list)

	created, err := c.CreateItem(ctx, models.Item{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)

	require.NoError(t, c.UpdateItem(ctx, widget))
	require.NoError(t, c.DeleteItem(ctx, 5))
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{http.StatusBadRequest, `{"detail":"Bad Request"}`, ErrBadRequest, "Bad Request"},
		{http.StatusUnauthorized, `{"detail":"Unauthorized"}`, ErrUnauthorized, "Unauthorized"},
		{http.StatusNotFound, `{"detail":"Not Found"}`, ErrNotFound, "Not Found"},
		{http.StatusInternalServerError, ``, ErrInternalServerError, "Internal Server Error"},
		{http.StatusServiceUnavailable, `unavailable`, nil, "http 503: unavailable"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.GetItem(context.Background(), 1)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
