package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/service"
	"github.com/MKhiriev/go-deck-sync/internal/store"
	"github.com/MKhiriev/go-deck-sync/internal/workers"
	"github.com/MKhiriev/go-deck-sync/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp assembles the client runtime. background workers, typically the
// network monitor, are started before the sync manager and stopped after it.
func NewApp(storages *store.ClientStorages, services *service.ClientServices, logger *logger.Logger, background ...workers.Worker) (*App, error) {
	if storages == nil || services == nil {
		return nil, errNoServices
	}

	ws := append(append([]workers.Worker{}, background...), services.SyncManager)

	app := &App{
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(ws...),
		logger:   logger,
	}

	services.SyncManager.OnSyncComplete(app.logSyncResult)
	services.SyncManager.OnSyncError(app.logSyncError)

	return app, nil
}

// Run starts the background workers and blocks until ctx is done. The local
// store is closed on return.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = a.logger.WithContext(ctx)

	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close local store: %w", closeErr))
		}
	}()

	if err = a.workers.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}
	a.logger.Info().Msg("client started")

	<-ctx.Done()

	a.logger.Info().Msg("client stopping")
	a.workers.Stop()

	return nil
}

func (a *App) logSyncResult(result models.SyncResult) {
	queued, err := a.services.LocalDataService.GetSyncQueue(context.Background())
	if err != nil {
		a.logger.Warn().Err(err).Msg("error reading sync queue")
	}

	a.logger.Info().
		Bool("success", result.Success).
		Int("items_synced", result.ItemsSynced).
		Int("pending", len(queued)).
		Msg("sync completed")
}

func (a *App) logSyncError(err error) {
	if errors.Is(err, service.ErrOffline) {
		a.logger.Debug().Msg("sync postponed until the remote store is reachable")
		return
	}

	a.logger.Warn().Err(err).Msg("sync error")
}
