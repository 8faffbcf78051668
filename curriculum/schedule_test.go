package curriculum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shikhi_backend/models"
)

func liveClass(title string, at time.Time, published bool, link string) models.CurriculumItem {
	return models.CurriculumItem{
		Type:          models.ItemTypeLiveClass,
		Title:         title,
		ScheduledDate: &at,
		IsPublished:   published,
		MeetingLink:   link,
	}
}

func TestNextLiveClassPicksSmallestPositiveDelta(t *testing.T) {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	items := []models.CurriculumItem{
		liveClass("yesterday", ref.Add(-time.Hour), true, "https://meet/a"),
		liveClass("in five hours", ref.Add(5*time.Hour), true, "https://meet/b"),
		liveClass("in two hours", ref.Add(2*time.Hour), true, "https://meet/c"),
	}

	next := NextLiveClass(items, ref)
	assert.NotNil(t, next)
	assert.Equal(t, "in two hours", next.Title)
}

func TestNextLiveClassExcludesPastEntirely(t *testing.T) {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	items := []models.CurriculumItem{
		liveClass("last week", ref.Add(-7*24*time.Hour), true, "https://meet/a"),
		liveClass("this exact instant", ref, true, "https://meet/b"),
	}

	// No fallback to the most recent past class, and "now" is not upcoming.
	assert.Nil(t, NextLiveClass(items, ref))
}

func TestNextLiveClassSkipsUnpublishedAndLinkless(t *testing.T) {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	items := []models.CurriculumItem{
		liveClass("unpublished", ref.Add(time.Hour), false, "https://meet/a"),
		liveClass("no link", ref.Add(time.Hour), true, ""),
		liveClass("valid", ref.Add(3*time.Hour), true, "https://meet/b"),
	}

	next := NextLiveClass(items, ref)
	assert.NotNil(t, next)
	assert.Equal(t, "valid", next.Title)
}

func TestNextLiveClassIgnoresOtherTypes(t *testing.T) {
	ref := time.Now()
	future := ref.Add(time.Hour)

	items := []models.CurriculumItem{
		{Type: models.ItemTypeResource, ScheduledDate: &future, IsPublished: true},
		{Type: models.ItemTypeAnnouncement, ScheduledDate: &future, IsPublished: true},
	}

	assert.Nil(t, NextLiveClass(items, ref))
}

func TestNextLiveClassTieKeepsFirstInOrder(t *testing.T) {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	at := ref.Add(time.Hour)

	items := []models.CurriculumItem{
		liveClass("first", at, true, "https://meet/a"),
		liveClass("second", at, true, "https://meet/b"),
	}

	next := NextLiveClass(items, ref)
	assert.NotNil(t, next)
	assert.Equal(t, "first", next.Title)
}
