package store

import (
	"errors"
	"log"
	"sync"

	"github.com/joshbuilds/portfolio-api/database"
	"github.com/joshbuilds/portfolio-api/models"
	"github.com/joshbuilds/portfolio-api/utils"
)

// ErrInvalidEvent is returned when a tracked event is missing its type or
// session id.
var ErrInvalidEvent = errors.New("event requires type and sessionId")

// AnalyticsStore owns the analytics JSON document: the raw append-only
// event log plus the derived sessions and aggregate. A single mutex
// serializes every load-mutate-persist cycle so concurrent track requests
// cannot lose each other's appends.
type AnalyticsStore struct {
	mu    sync.Mutex
	files *database.FilesClient
}

func NewAnalyticsStore(files *database.FilesClient) (*AnalyticsStore, error) {
	if err := database.InitJSON(files.AnalyticsPath(), models.NewAnalyticsData()); err != nil {
		return nil, err
	}
	return &AnalyticsStore{files: files}, nil
}

// load reads the document, falling back to the empty shape on any read or
// parse error. Corruption is logged and swallowed rather than fatal; the
// telemetry path must never take the site down.
func (s *AnalyticsStore) load() *models.AnalyticsData {
	data := models.NewAnalyticsData()
	if err := database.ReadJSON(s.files.AnalyticsPath(), data); err != nil {
		log.Printf("Error reading analytics data: %v", err)
		return models.NewAnalyticsData()
	}
	if data.Events == nil {
		data.Events = []models.Event{}
	}
	if data.Sessions == nil {
		data.Sessions = []models.Session{}
	}
	return data
}

// persist rewrites the whole document. Failures are logged only: writes on
// the telemetry path fail open by design, so callers still report success.
func (s *AnalyticsStore) persist(data *models.AnalyticsData) {
	if err := database.WriteJSON(s.files.AnalyticsPath(), data); err != nil {
		log.Printf("Error writing analytics data: %v", err)
	}
}

// Append validates and records one event, upserts its session and
// recomputes the aggregate before persisting. The returned error is only
// ever a validation error; persistence failures are swallowed.
func (s *AnalyticsStore) Append(event models.Event) error {
	if event.Type == "" || event.SessionID == "" {
		return ErrInvalidEvent
	}

	if event.Timestamp == 0 {
		event.Timestamp = utils.NowMillis()
	}
	if event.ID == "" {
		event.ID = utils.NewID("")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	data.Events = append(data.Events, event)

	idx := -1
	for i := range data.Sessions {
		if data.Sessions[i].ID == event.SessionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		data.Sessions = append(data.Sessions, models.Session{
			ID:        event.SessionID,
			StartTime: event.Timestamp,
			EndTime:   event.Timestamp,
			Sections:  []string{},
		})
		idx = len(data.Sessions) - 1
	}

	session := &data.Sessions[idx]
	if event.Timestamp > session.EndTime {
		session.EndTime = event.Timestamp
	}
	session.Interactions++
	if event.Section != "" && !contains(session.Sections, event.Section) {
		session.Sections = append(session.Sections, event.Section)
	}

	data.Aggregated = Aggregate(data.Events)

	s.persist(data)
	return nil
}

// Query returns the events matching every supplied filter, alongside the
// full session list, the last-computed aggregate and the unfiltered totals.
// The aggregate deliberately ignores the filter; only the events array is
// narrowed.
func (s *AnalyticsStore) Query(filter models.QueryFilter) *models.AnalyticsResponse {
	s.mu.Lock()
	data := s.load()
	s.mu.Unlock()

	filtered := make([]models.Event, 0, len(data.Events))
	for _, event := range data.Events {
		if filter.Matches(event) {
			filtered = append(filtered, event)
		}
	}

	return &models.AnalyticsResponse{
		Events:        filtered,
		Sessions:      data.Sessions,
		Aggregated:    data.Aggregated,
		TotalEvents:   len(data.Events),
		TotalSessions: len(data.Sessions),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
