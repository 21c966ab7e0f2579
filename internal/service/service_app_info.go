package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
)

// appInfoService reports the version of the running remote store.
type appInfoService struct {
	version string
}

// NewAppInfoService returns ErrVersionIsNotSpecified for a blank version.
func NewAppInfoService(version string, logger *logger.Logger) (AppInfoService, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
