package service

import (
	"github.com/MKhiriev/go-deck-sync/internal/adapter"
	"github.com/MKhiriev/go-deck-sync/internal/config"
	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/network"
	"github.com/MKhiriev/go-deck-sync/internal/store"
)

type ClientServices struct {
	LocalDataService LocalDataService
	SyncManager      SyncManager
}

func NewClientServices(storages *store.ClientStorages, gateway adapter.RemoteDataGateway, monitor network.Monitor, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	dataSvc := NewLocalDataService(storages, logger)

	syncManager := NewSyncManager(dataSvc, gateway, monitor, SyncManagerOptions{
		UserID:         cfg.App.UserID,
		Interval:       cfg.Workers.SyncInterval,
		RetryBaseDelay: cfg.Workers.RetryBaseDelay,
		MaxRetries:     cfg.Workers.MaxRetries,
	}, logger)

	return &ClientServices{
		LocalDataService: dataSvc,
		SyncManager:      syncManager,
	}
}
