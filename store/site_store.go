package store

import (
	"log"
	"sync"

	"github.com/joshbuilds/portfolio-api/database"
	"github.com/joshbuilds/portfolio-api/models"
)

// SiteStore owns the site-settings JSON document.
type SiteStore struct {
	mu    sync.Mutex
	files *database.FilesClient
}

func NewSiteStore(files *database.FilesClient) (*SiteStore, error) {
	if err := database.InitJSON(files.SitePath(), models.NewSiteSettings()); err != nil {
		return nil, err
	}
	return &SiteStore{files: files}, nil
}

func (s *SiteStore) load() *models.SiteSettings {
	settings := models.NewSiteSettings()
	if err := database.ReadJSON(s.files.SitePath(), settings); err != nil {
		log.Printf("Error reading site settings: %v", err)
		return models.NewSiteSettings()
	}
	if settings.SiteImages == nil {
		settings.SiteImages = []string{}
	}
	return settings
}

func (s *SiteStore) Get() *models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update merges the non-nil fields of req into the stored settings and
// returns the result.
func (s *SiteStore) Update(req models.UpdateSiteSettingsRequest) *models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.load()
	if req.ProfileImage != nil {
		settings.ProfileImage = *req.ProfileImage
	}
	if req.SiteImages != nil {
		settings.SiteImages = *req.SiteImages
		if settings.SiteImages == nil {
			settings.SiteImages = []string{}
		}
	}

	if err := database.WriteJSON(s.files.SitePath(), settings); err != nil {
		log.Printf("Error writing site settings: %v", err)
	}
	return settings
}
