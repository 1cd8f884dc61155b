package attendance

import (
	"sort"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

// PairAccessEvents turns one day's raw swipes into entry/exit segments.
// Events are sorted by timestamp, partitioned by access-point category
// (categories keep their first-seen order), then paired greedily within each
// category: first swipe opens a segment, the next one closes it. An odd
// trailing swipe leaves its segment open with zero TimeOut and TimeSpend.
// Reversed pairs are tolerated: the spend floors at zero instead of failing.
func PairAccessEvents(events []attendance.AccessEvent) []attendance.AccessPointSegment {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]attendance.AccessEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var categoryOrder []attendance.AccessPointCategory
	byCategory := make(map[attendance.AccessPointCategory][]attendance.AccessEvent)
	for _, ev := range sorted {
		if _, seen := byCategory[ev.AccessPoint]; !seen {
			categoryOrder = append(categoryOrder, ev.AccessPoint)
		}
		byCategory[ev.AccessPoint] = append(byCategory[ev.AccessPoint], ev)
	}

	var segments []attendance.AccessPointSegment
	for _, category := range categoryOrder {
		segments = append(segments, pairCategory(category, byCategory[category])...)
	}
	return segments
}

func pairCategory(category attendance.AccessPointCategory, events []attendance.AccessEvent) []attendance.AccessPointSegment {
	segments := make([]attendance.AccessPointSegment, 0, (len(events)+1)/2)
	for i := 0; i < len(events); i += 2 {
		segment := attendance.AccessPointSegment{
			AccessPoint: category,
			TimeIn:      timeutil.FromClock(events[i].Timestamp),
		}
		if i+1 < len(events) {
			segment.TimeOut = timeutil.FromClock(events[i+1].Timestamp)
			segment.TimeSpend = segment.TimeOut.Sub(segment.TimeIn)
		}
		segments = append(segments, segment)
	}
	return segments
}
