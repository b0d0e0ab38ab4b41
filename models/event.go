package models

// Position is the pixel coordinate of a click event.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Event represents a single client-side interaction. Type and SessionID
// are mandatory; everything else is optional and depends on the event type
// (scroll events carry metadata.depth, view events metadata.timeSpent).
// Events are append-only: once stored they are never edited.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Element   string                 `json:"element,omitempty"`
	Section   string                 `json:"section,omitempty"`
	Position  *Position              `json:"position,omitempty"`
	Timestamp int64                  `json:"timestamp"`
	SessionID string                 `json:"sessionId"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Session groups the events of one browser tab, keyed by the
// client-generated session id.
type Session struct {
	ID           string   `json:"id"`
	StartTime    int64    `json:"startTime"`
	EndTime      int64    `json:"endTime"`
	Sections     []string `json:"sections"`
	Interactions int      `json:"interactions"`
}

// ElementCount is one entry of the popular-elements ranking.
type ElementCount struct {
	Element string `json:"element"`
	Count   int    `json:"count"`
}

// Aggregate is the derived summary view. It is always recomputed wholesale
// from the full event list, never patched incrementally.
type Aggregate struct {
	ClicksByElement map[string]int     `json:"clicksByElement"`
	ClicksBySection map[string]int     `json:"clicksBySection"`
	ScrollDepth     map[string]float64 `json:"scrollDepth"`
	TimeOnSection   map[string]float64 `json:"timeOnSection"`
	PopularElements []ElementCount     `json:"popularElements"`
}

// NewAggregate returns the zeroed aggregate shape as it appears in a fresh
// data file.
func NewAggregate() Aggregate {
	return Aggregate{
		ClicksByElement: map[string]int{},
		ClicksBySection: map[string]int{},
		ScrollDepth:     map[string]float64{},
		TimeOnSection:   map[string]float64{},
		PopularElements: []ElementCount{},
	}
}

// AnalyticsData is the full persisted analytics document.
type AnalyticsData struct {
	Events     []Event   `json:"events"`
	Sessions   []Session `json:"sessions"`
	Aggregated Aggregate `json:"aggregated"`
}

// NewAnalyticsData returns the empty document shape used both for
// initialization and as the fail-soft fallback on read errors.
func NewAnalyticsData() *AnalyticsData {
	return &AnalyticsData{
		Events:     []Event{},
		Sessions:   []Session{},
		Aggregated: NewAggregate(),
	}
}

// QueryFilter narrows the raw event list returned by the data endpoint.
// Nil/empty fields mean "no constraint". Timestamps are epoch milliseconds,
// inclusive on both ends.
type QueryFilter struct {
	StartDate *int64
	EndDate   *int64
	EventType string
	Section   string
}

// Matches reports whether the event passes every supplied filter.
func (f QueryFilter) Matches(e Event) bool {
	if f.StartDate != nil && e.Timestamp < *f.StartDate {
		return false
	}
	if f.EndDate != nil && e.Timestamp > *f.EndDate {
		return false
	}
	if f.EventType != "" && e.Type != f.EventType {
		return false
	}
	if f.Section != "" && e.Section != f.Section {
		return false
	}
	return true
}

// AnalyticsResponse is the payload of GET /api/analytics/data. The events
// array reflects the filters; sessions, aggregated and the totals always
// cover the whole store.
type AnalyticsResponse struct {
	Events        []Event   `json:"events"`
	Sessions      []Session `json:"sessions"`
	Aggregated    Aggregate `json:"aggregated"`
	TotalEvents   int       `json:"totalEvents"`
	TotalSessions int       `json:"totalSessions"`
}
