package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/item-api/models"
)

// AuthService exchanges static credentials for signed access tokens and
// verifies those tokens on every protected request.
type AuthService interface {
	Login(ctx context.Context, credential models.Credential) (models.Token, error)
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService exposes item CRUD to the transport layer.
type ItemService interface {
	GetItem(ctx context.Context, id int64) (models.Item, error)
	// ListItems returns every item when all is true, otherwise only the
	// items of company.
	ListItems(ctx context.Context, company string, all bool) ([]models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (bool, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
}
