package scheduleservice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

func TestMapEventsGroupsDuplicates(t *testing.T) {
	raw := `{
		"subjects": [{
			"item_date": "2024-03-04",
			"items": [
				{"itemName": "MATH140", "start": 13.0, "end": 14.5, "type_id": 1},
				{"itemName": "MATH140 Discussion", "start": 13.0, "end": 14.5, "type_id": 1},
				{"itemName": "PHYS161", "start": "15.0", "end": "16.0", "type_id": "2"}
			]
		}]
	}`

	var resp availabilityResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	events := mapEvents(resp)
	require.Len(t, events, 2)

	// Дубликат по (дата, начало, конец) схлопнут, имена склеены
	assert.Equal(t, "MATH140, MATH140 Discussion", events[0].EventName)
	assert.Equal(t, domain.StatusClassMeeting, events[0].Status)

	// Числа-строки фида тоже парсятся
	assert.Equal(t, 15.0, events[1].TimeStart)
	assert.Equal(t, domain.StatusReserved, events[1].Status)
}

func TestMapEventsSkipsUnparsableTimes(t *testing.T) {
	raw := `{
		"subjects": [{
			"item_date": "2024-03-04",
			"items": [
				{"itemName": "broken", "start": "N/A", "end": "N/A", "type_id": 1},
				{"itemName": "ok", "start": 9.0, "end": 10.0, "type_id": 1}
			]
		}]
	}`

	var resp availabilityResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	events := mapEvents(resp)
	require.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].EventName)
}

func TestStatusFromTypeID(t *testing.T) {
	assert.Equal(t, domain.StatusTentative, statusFromTypeID(feedNumber("4")))
	assert.Equal(t, domain.StatusCancelled, statusFromTypeID(feedNumber("5")))
	// Незнакомый код трактуется как занятость
	assert.Equal(t, domain.StatusReserved, statusFromTypeID(feedNumber("99")))
}
