package curriculum

import (
	"sort"
	"time"

	"github.com/jinzhu/now"

	"shikhi_backend/models"
)

// DateGroup is one calendar date with its items in stored order.
type DateGroup struct {
	Date  string                  `json:"date"`
	Items []models.CurriculumItem `json:"items"`
}

const dateKeyLayout = "2006-01-02"

// dateKey buckets a timestamp into its UTC calendar date so authors and
// viewers in different time zones see the same grouping.
func dateKey(t time.Time) string {
	return now.New(t.UTC()).BeginningOfDay().Format(dateKeyLayout)
}

// GroupItemsByDate filters to published items and groups them by UTC calendar
// date. Date keys are sorted ascending; within a date, items keep their stored
// relative order. Items without a scheduled date are skipped.
func GroupItemsByDate(items []models.CurriculumItem) []DateGroup {
	grouped := make(map[string][]models.CurriculumItem)

	for _, item := range items {
		if !item.IsPublished || item.ScheduledDate == nil {
			continue
		}
		key := dateKey(*item.ScheduledDate)
		grouped[key] = append(grouped[key], item)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]DateGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, DateGroup{Date: key, Items: grouped[key]})
	}
	return groups
}

// PinnedAnnouncements returns published, pinned announcements that have not
// expired, in stored order. Announcements without ValidUntil never expire.
func PinnedAnnouncements(items []models.CurriculumItem, ref time.Time) []models.CurriculumItem {
	var pinned []models.CurriculumItem
	for _, item := range items {
		if item.Type != models.ItemTypeAnnouncement || !item.IsPublished || !item.IsPinned {
			continue
		}
		if item.ValidUntil != nil && item.ValidUntil.Before(ref) {
			continue
		}
		pinned = append(pinned, item)
	}
	return pinned
}
