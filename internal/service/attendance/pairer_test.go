package attendance

import (
	"testing"
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(category attendance.AccessPointCategory, hour, minute int) attendance.AccessEvent {
	return attendance.AccessEvent{
		EmployeeID:  "emp-48",
		Timestamp:   time.Date(2018, 10, 1, hour, minute, 0, 0, time.UTC),
		AccessPoint: category,
	}
}

func TestPairAccessEvents_EvenCountFullyPaired(t *testing.T) {
	t.Parallel()

	segments := PairAccessEvents([]attendance.AccessEvent{
		event(attendance.CategoryMain, 9, 0),
		event(attendance.CategoryMain, 13, 0),
		event(attendance.CategoryMain, 14, 0),
		event(attendance.CategoryMain, 18, 30),
	})

	require.Len(t, segments, 2)
	assert.Equal(t, timeutil.New(9, 0), segments[0].TimeIn)
	assert.Equal(t, timeutil.New(13, 0), segments[0].TimeOut)
	assert.Equal(t, timeutil.New(4, 0), segments[0].TimeSpend)
	assert.Equal(t, timeutil.New(14, 0), segments[1].TimeIn)
	assert.Equal(t, timeutil.New(18, 30), segments[1].TimeOut)
	assert.Equal(t, timeutil.New(4, 30), segments[1].TimeSpend)
}

func TestPairAccessEvents_OddCountLeavesTrailingSegmentOpen(t *testing.T) {
	t.Parallel()

	segments := PairAccessEvents([]attendance.AccessEvent{
		event(attendance.CategoryMain, 3, 4),
		event(attendance.CategoryMain, 7, 57),
		event(attendance.CategoryMain, 12, 5),
	})

	require.Len(t, segments, 2)

	assert.Equal(t, timeutil.New(3, 4), segments[0].TimeIn)
	assert.Equal(t, timeutil.New(7, 57), segments[0].TimeOut)
	assert.Equal(t, timeutil.New(4, 53), segments[0].TimeSpend)

	assert.Equal(t, timeutil.New(12, 5), segments[1].TimeIn)
	assert.True(t, segments[1].TimeOut.IsZero())
	assert.True(t, segments[1].TimeSpend.IsZero())
}

func TestPairAccessEvents_SingleEventHasZeroTimeOutAndTimeSpend(t *testing.T) {
	t.Parallel()

	for _, category := range []attendance.AccessPointCategory{
		attendance.CategoryMain,
		attendance.CategoryRecreation,
		attendance.CategoryGymnasium,
	} {
		segments := PairAccessEvents([]attendance.AccessEvent{event(category, 12, 52)})

		require.Len(t, segments, 1)
		assert.Equal(t, category, segments[0].AccessPoint)
		assert.Equal(t, timeutil.New(12, 52), segments[0].TimeIn)
		assert.True(t, segments[0].TimeOut.IsZero())
		assert.True(t, segments[0].TimeSpend.IsZero())
	}
}

func TestPairAccessEvents_NoEvents(t *testing.T) {
	t.Parallel()

	assert.Empty(t, PairAccessEvents(nil))
	assert.Empty(t, PairAccessEvents([]attendance.AccessEvent{}))
}

func TestPairAccessEvents_SortsUnorderedInput(t *testing.T) {
	t.Parallel()

	segments := PairAccessEvents([]attendance.AccessEvent{
		event(attendance.CategoryMain, 16, 11),
		event(attendance.CategoryMain, 12, 10),
	})

	require.Len(t, segments, 1)
	assert.Equal(t, timeutil.New(12, 10), segments[0].TimeIn)
	assert.Equal(t, timeutil.New(16, 11), segments[0].TimeOut)
	assert.Equal(t, timeutil.New(4, 1), segments[0].TimeSpend)
}

func TestPairAccessEvents_GroupsByCategoryInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	segments := PairAccessEvents([]attendance.AccessEvent{
		event(attendance.CategoryMain, 8, 0),
		event(attendance.CategoryRecreation, 11, 21),
		event(attendance.CategoryGymnasium, 12, 52),
		event(attendance.CategoryGymnasium, 12, 56),
		event(attendance.CategoryMain, 17, 30),
	})

	require.Len(t, segments, 3)
	assert.Equal(t, attendance.CategoryMain, segments[0].AccessPoint)
	assert.Equal(t, attendance.CategoryRecreation, segments[1].AccessPoint)
	assert.Equal(t, attendance.CategoryGymnasium, segments[2].AccessPoint)

	assert.Equal(t, timeutil.New(8, 0), segments[0].TimeIn)
	assert.Equal(t, timeutil.New(17, 30), segments[0].TimeOut)
	assert.Equal(t, timeutil.New(0, 4), segments[2].TimeSpend)
}

func TestPairAccessEvents_NoEventDroppedOrDuplicated(t *testing.T) {
	t.Parallel()

	events := []attendance.AccessEvent{
		event(attendance.CategoryMain, 3, 4),
		event(attendance.CategoryMain, 7, 57),
		event(attendance.CategoryRecreation, 8, 15),
		event(attendance.CategoryRecreation, 8, 45),
		event(attendance.CategoryGymnasium, 12, 52),
		event(attendance.CategoryMain, 12, 5),
	}

	segments := PairAccessEvents(events)

	seen := 0
	for _, s := range segments {
		seen++
		if !s.TimeOut.IsZero() {
			seen++
		}
	}
	assert.Equal(t, len(events), seen)
}
