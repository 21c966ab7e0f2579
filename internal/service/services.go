package service

import (
	"fmt"

	"github.com/MKhiriev/go-deck-sync/internal/config"
	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/store"
)

type Services struct {
	RemoteDataService RemoteDataService
	AppInfoService    AppInfoService
}

// NewServices builds the server services. Records reach the repository only
// after validation.
func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	remoteData := NewRemoteDataValidationService().
		Wrap(NewRemoteDataService(storages.RemoteRepository, logger))

	return &Services{
		RemoteDataService: remoteData,
		AppInfoService:    appInfo,
	}, nil
}
