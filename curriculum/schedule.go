package curriculum

import (
	"time"

	"shikhi_backend/models"
)

// NextLiveClass scans the given items and returns the nearest upcoming
// live class: published, with a meeting link, scheduled strictly after now.
// Past classes are excluded entirely, never clamped to the most recent one.
// Ties on the same instant keep the first item in module/item order.
func NextLiveClass(items []models.CurriculumItem, ref time.Time) *models.CurriculumItem {
	var next *models.CurriculumItem
	var bestDelta time.Duration

	for i := range items {
		item := &items[i]
		if item.Type != models.ItemTypeLiveClass || !item.IsPublished || item.MeetingLink == "" {
			continue
		}
		if item.ScheduledDate == nil || !item.ScheduledDate.After(ref) {
			continue
		}

		delta := item.ScheduledDate.Sub(ref)
		if next == nil || delta < bestDelta {
			next = item
			bestDelta = delta
		}
	}

	return next
}
