package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshbuilds/portfolio-api/models"
	"github.com/joshbuilds/portfolio-api/store"
)

type SiteHandlers struct {
	Store *store.SiteStore
}

func NewSiteHandlers(s *store.SiteStore) *SiteHandlers {
	return &SiteHandlers{Store: s}
}

// Get returns the site image settings. Public.
func (h *SiteHandlers) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Get())
}

// Update merges the submitted fields into the stored settings.
func (h *SiteHandlers) Update(c *gin.Context) {
	var req models.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.Store.Update(req))
}
