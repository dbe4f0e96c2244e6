package service

import (
	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/events"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/store"
)

type Services struct {
	AuthService AuthService
	ItemService ItemService
}

func NewServices(storages *store.Storages, publisher events.Publisher, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	matcher, err := NewPasswordMatcher(cfg.App.PasswordHashing)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(NewCredentialStore(cfg.App.Credentials, matcher), cfg.App, logger),
		ItemService: NewItemService(storages.ItemRepository, publisher, logger),
	}, nil
}
