package store

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshbuilds/portfolio-api/models"
)

func clickEvent(element, section string) models.Event {
	return models.Event{Type: "click", Element: element, Section: section, SessionID: "s1"}
}

func scrollEvent(section string, depth float64) models.Event {
	return models.Event{Type: "scroll", Section: section, SessionID: "s1", Metadata: map[string]interface{}{"depth": depth}}
}

func viewEvent(section string, timeSpent float64) models.Event {
	return models.Event{Type: "view", Section: section, SessionID: "s1", Metadata: map[string]interface{}{"timeSpent": timeSpent}}
}

func TestAggregateClicks(t *testing.T) {
	events := []models.Event{
		clickEvent("cta-button", "hero"),
		clickEvent("cta-button", "hero"),
		clickEvent("nav-link", "nav"),
		clickEvent("", "hero"), // no element, still counts for the section
	}

	agg := Aggregate(events)

	assert.Equal(t, 2, agg.ClicksByElement["cta-button"])
	assert.Equal(t, 1, agg.ClicksByElement["nav-link"])
	assert.Equal(t, 3, agg.ClicksBySection["hero"])
	assert.Equal(t, 1, agg.ClicksBySection["nav"])
}

func TestAggregateScrollDepthKeepsMax(t *testing.T) {
	events := []models.Event{
		scrollEvent("portfolio", 30),
		scrollEvent("portfolio", 80),
		scrollEvent("portfolio", 50),
	}

	agg := Aggregate(events)
	assert.Equal(t, 80.0, agg.ScrollDepth["portfolio"])
}

func TestAggregateTimeOnSectionSums(t *testing.T) {
	events := []models.Event{
		viewEvent("skills", 1200),
		viewEvent("skills", 800),
		viewEvent("contact", 500),
	}

	agg := Aggregate(events)
	assert.Equal(t, 2000.0, agg.TimeOnSection["skills"])
	assert.Equal(t, 500.0, agg.TimeOnSection["contact"])
}

func TestAggregateIgnoresHoverAndForm(t *testing.T) {
	events := []models.Event{
		{Type: "hover", Element: "card", Section: "portfolio", SessionID: "s1"},
		{Type: "form", Element: "contact-form", Section: "contact", SessionID: "s1"},
	}

	agg := Aggregate(events)
	assert.Empty(t, agg.ClicksByElement)
	assert.Empty(t, agg.ClicksBySection)
	assert.Empty(t, agg.ScrollDepth)
	assert.Empty(t, agg.TimeOnSection)
	assert.Empty(t, agg.PopularElements)
}

func TestAggregateSkipsEventsMissingMetadata(t *testing.T) {
	events := []models.Event{
		// no metadata at all
		{Type: "scroll", Section: "hero", SessionID: "s1"},
		// no section
		{Type: "scroll", SessionID: "s1", Metadata: map[string]interface{}{"depth": 50.0}},
		// wrong metadata key
		{Type: "view", Section: "hero", SessionID: "s1", Metadata: map[string]interface{}{"other": 1.0}},
	}

	agg := Aggregate(events)
	assert.Empty(t, agg.ScrollDepth)
	assert.Empty(t, agg.TimeOnSection)
}

func TestAggregatePopularElementsTop20(t *testing.T) {
	var events []models.Event
	for i := 0; i < 25; i++ {
		element := fmt.Sprintf("element-%02d", i)
		// element-00 gets 26 clicks, element-01 gets 25, down to element-24 with 2
		for j := 0; j <= 25-i; j++ {
			events = append(events, clickEvent(element, "hero"))
		}
	}

	agg := Aggregate(events)
	require.Len(t, agg.PopularElements, 20)
	assert.Equal(t, "element-00", agg.PopularElements[0].Element)
	assert.Equal(t, 26, agg.PopularElements[0].Count)
	for i := 1; i < len(agg.PopularElements); i++ {
		assert.GreaterOrEqual(t, agg.PopularElements[i-1].Count, agg.PopularElements[i].Count)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	events := []models.Event{
		clickEvent("a", "hero"),
		clickEvent("b", "hero"),
		clickEvent("a", "nav"),
		scrollEvent("hero", 40),
		scrollEvent("hero", 90),
		viewEvent("hero", 300),
		viewEvent("nav", 100),
	}

	base := Aggregate(events)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Event, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		agg := Aggregate(shuffled)
		assert.Equal(t, base.ClicksByElement, agg.ClicksByElement)
		assert.Equal(t, base.ClicksBySection, agg.ClicksBySection)
		assert.Equal(t, base.ScrollDepth, agg.ScrollDepth)
		assert.Equal(t, base.TimeOnSection, agg.TimeOnSection)
		assert.ElementsMatch(t, base.PopularElements, agg.PopularElements)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	events := []models.Event{
		clickEvent("a", "hero"),
		scrollEvent("hero", 60),
		viewEvent("hero", 250),
	}

	first := Aggregate(events)
	second := Aggregate(events)
	assert.Equal(t, first, second)
}
