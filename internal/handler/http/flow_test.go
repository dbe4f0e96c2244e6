package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/metrics"
	"github.com/MKhiriev/item-api/internal/service"
	"github.com/MKhiriev/item-api/internal/store"
	"github.com/MKhiriev/item-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteRouter wires the real store, services and router over a
// throwaway SQLite database.
func newSQLiteRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "items.db") + "?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: dsn, MaxOpenConns: 4},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	m := metrics.New()
	storages.DB.SetTxObserver(m)

	cfg := &config.StructuredConfig{App: config.App{
		TokenSignKey:    "flow-test-key",
		TokenIssuer:     "item-api",
		TokenDuration:   time.Minute,
		Credentials:     map[string]string{"alice": "secret"},
		PasswordHashing: config.HashingPlain,
	}}
	services, err := service.NewServices(storages, nil, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, storages.DB, m, logger.Nop()).Init(), m
}

func loginToken(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := serve(t, router, http.MethodPost, "/login", `{"username":"alice","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, models.TokenType, resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestFlow_CreateGetDeleteGet(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	token := loginToken(t, router)

	rec := serve(t, router, http.MethodPost, "/api/item",
		`{"Name":"Widget","Price":100,"Company":"Acme","Remarks":"-"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	path := fmt.Sprintf("/api/item/%d", created.ID)
	rec = serve(t, router, http.MethodGet, path, "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.Item{ID: created.ID, Name: "Widget", Price: 100, Company: "Acme", Remarks: "-"}, got)

	rec = serve(t, router, http.MethodDelete, path, "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(t, router, http.MethodGet, path, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFlow_UpdateAndList(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	token := loginToken(t, router)

	for _, body := range []string{
		`{"Name":"A","Price":1,"Company":"Acme","Remarks":""}`,
		`{"Name":"B","Price":2,"Company":"Acme","Remarks":""}`,
		`{"Name":"C","Price":3,"Company":"Other","Remarks":""}`,
	} {
		require.Equal(t, http.StatusOK, serve(t, router, http.MethodPost, "/api/item/", body, token).Code)
	}

	var acme []models.Item
	rec := serve(t, router, http.MethodGet, "/api/items/Acme", "", token)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &acme))
	require.Len(t, acme, 2)

	var all []models.Item
	rec = serve(t, router, http.MethodGet, "/api/items/Acme?all=true", "", token)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	update := fmt.Sprintf(`{"ID":%d,"Name":"A2","Price":10,"Company":"Acme","Remarks":"x"}`, acme[0].ID)
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodPut, "/api/item", update, token).Code)

	var got models.Item
	rec = serve(t, router, http.MethodGet, fmt.Sprintf("/api/item/%d", acme[0].ID), "", token)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, int64(10), got.Price)

	// updating a missing id is a committed no-op
	rec = serve(t, router, http.MethodPut, "/api/item", `{"ID":424242,"Name":"ghost","Price":0,"Company":"Acme","Remarks":""}`, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodGet, "/api/items/x?all=true", "", token)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	rec = serve(t, router, http.MethodGet, "/metrics", "", "")
	assert.Contains(t, rec.Body.String(), `item_api_store_transactions_total{operation="create_item",outcome="commit"} 3`)
	assert.Contains(t, rec.Body.String(), `item_api_store_transactions_total{operation="update_item",outcome="commit"} 2`)
}

func TestFlow_Healthz(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	rec := serve(t, router, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestFlow_OverlongFieldsRejectedBeforeStore(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	token := loginToken(t, router)

	body := fmt.Sprintf(`{"Name":%q,"Price":1,"Company":"Acme","Remarks":""}`, strings.Repeat("n", 201))
	rec := serve(t, router, http.MethodPost, "/api/item", body, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Bad Request"}`, rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/api/items/Acme", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFlow_PartialUpdateLeavesItemIntact(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	token := loginToken(t, router)

	rec := serve(t, router, http.MethodPost, "/api/item",
		`{"Name":"Widget","Price":100,"Company":"Acme","Remarks":"-"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = serve(t, router, http.MethodPut, "/api/item", fmt.Sprintf(`{"ID":%d}`, created.ID), token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/item", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got models.Item
	rec = serve(t, router, http.MethodGet, fmt.Sprintf("/api/item/%d", created.ID), "", token)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	rec = serve(t, router, http.MethodGet, "/api/items/x?all=true", "", token)
	assert.JSONEq(t, fmt.Sprintf(`[{"ID":%d,"Name":"Widget","Price":100,"Company":"Acme","Remarks":"-"}]`, created.ID), rec.Body.String())
}
