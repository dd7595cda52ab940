package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

func TestEventsOnDateNilEvents(t *testing.T) {
	room := &domain.Room{ID: 1, Name: "ESJ 0202"}

	events, err := EventsOnDate(room, types.NewCivilDate(2024, time.March, 4))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventsOnDateFiltersByDate(t *testing.T) {
	room := &domain.Room{
		ID: 1,
		Events: []domain.Event{
			{Date: "2024-03-05", TimeStart: 9, TimeEnd: 10, EventName: "CHEM135", Status: domain.StatusClassMeeting},
			{Date: "2024-03-04", TimeStart: 13, TimeEnd: 14.5, EventName: "MATH140", Status: domain.StatusClassMeeting},
			{Date: "2024-03-04T00:00:00", TimeStart: 15, TimeEnd: 16, EventName: "PHYS161", Status: domain.StatusReserved},
		},
	}

	events, err := EventsOnDate(room, types.NewCivilDate(2024, time.March, 4))
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Суффикс T00:00:00 в дате фида не мешает совпадению по календарному дню
	assert.Equal(t, "MATH140", events[0].EventName)
	assert.Equal(t, "PHYS161", events[1].EventName)
}

func TestEventsOnDateFiltersNonOccupying(t *testing.T) {
	room := &domain.Room{
		ID: 1,
		Events: []domain.Event{
			{Date: "2024-03-04", TimeStart: 9, TimeEnd: 10, EventName: "hold", Status: domain.StatusTentative},
			{Date: "2024-03-04", TimeStart: 11, TimeEnd: 12, EventName: "cancelled", Status: domain.StatusCancelled},
			{Date: "2024-03-04", TimeStart: 13, TimeEnd: 14, EventName: "real", Status: domain.StatusReserved},
		},
	}

	events, err := EventsOnDate(room, types.NewCivilDate(2024, time.March, 4))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "real", events[0].EventName)
}

func TestEventsOnDateMalformedDate(t *testing.T) {
	room := &domain.Room{
		ID: 1,
		Events: []domain.Event{
			{Date: "not-a-date", TimeStart: 9, TimeEnd: 10, EventName: "broken", Status: domain.StatusReserved},
		},
	}

	_, err := EventsOnDate(room, types.NewCivilDate(2024, time.March, 4))
	require.ErrorIs(t, err, ErrMalformedEvent)
}

func TestEventsOnDateDoesNotMutateInput(t *testing.T) {
	// Вход намеренно не отсортирован
	original := []domain.Event{
		{Date: "2024-03-04", TimeStart: 15, TimeEnd: 16, EventName: "late", Status: domain.StatusReserved},
		{Date: "2024-03-04", TimeStart: 9, TimeEnd: 10, EventName: "early", Status: domain.StatusReserved},
	}
	room := &domain.Room{ID: 1, Events: original}

	_, err := EventsOnDate(room, types.NewCivilDate(2024, time.March, 4))
	require.NoError(t, err)

	assert.Equal(t, "late", room.Events[0].EventName)
	assert.Equal(t, "early", room.Events[1].EventName)
}
