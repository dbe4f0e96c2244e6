package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/utils"
	"github.com/MKhiriev/item-api/models"
)

type httpItemsClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPItemsClient constructs the REST implementation of [ItemsClient].
// address may omit the scheme, "http://" is assumed then.
func NewHTTPItemsClient(address string, timeout time.Duration, logger *logger.Logger) (ItemsClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpItemsClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpItemsClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpItemsClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpItemsClient) Login(ctx context.Context, credential models.Credential) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credential).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", credential.Username).Msg("logged in to item api")
	return token, nil
}

func (h *httpItemsClient) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&item).
		Get("/api/item/{id}")
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (h *httpItemsClient) ListItems(ctx context.Context, company string, all bool) ([]models.Item, error) {
	var items []models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetPathParam("company", company).
		SetQueryParam("all", strconv.FormatBool(all)).
		SetResult(&items).
		Get("/api/items/{company}")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpItemsClient) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var created models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&created).
		Post("/api/item")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return created, nil
}

func (h *httpItemsClient) UpdateItem(ctx context.Context, item models.Item) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put("/api/item")
	if err != nil {
		return fmt.Errorf("update item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpItemsClient) DeleteItem(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/item/{id}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}
