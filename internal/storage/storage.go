package storage

import (
	"dtr/internal/config"
	"dtr/internal/domain"
)

// Storage persists and loads the last campaign report (e.g. for the
// report viewer).
type Storage interface {
	Save(report *domain.CampaignReport) error
	Load() (*domain.CampaignReport, error)
}

// JSONStorage stores the report in a JSON file under the configured
// report path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's report path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
