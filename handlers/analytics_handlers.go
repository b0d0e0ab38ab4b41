package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joshbuilds/portfolio-api/models"
	"github.com/joshbuilds/portfolio-api/store"
)

type AnalyticsHandlers struct {
	Store *store.AnalyticsStore
}

func NewAnalyticsHandlers(s *store.AnalyticsStore) *AnalyticsHandlers {
	return &AnalyticsHandlers{Store: s}
}

// Track records one client event. The endpoint is public and fails open on
// persistence problems: as long as the event itself is well formed the
// client gets a success, telemetry must never break the site.
func (h *AnalyticsHandlers) Track(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		log.Printf("Error binding incoming analytics JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data"})
		return
	}

	if err := h.Store.Append(event); err != nil {
		if errors.Is(err, store.ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data"})
			return
		}
		log.Printf("Error tracking event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetData returns the raw events (narrowed by the optional filters) plus
// the full session list and aggregate.
func (h *AnalyticsHandlers) GetData(c *gin.Context) {
	var filter models.QueryFilter

	if v := c.Query("startDate"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.StartDate = &ms
		}
	}
	if v := c.Query("endDate"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.EndDate = &ms
		}
	}
	filter.EventType = c.Query("eventType")
	filter.Section = c.Query("section")

	c.JSON(http.StatusOK, h.Store.Query(filter))
}
