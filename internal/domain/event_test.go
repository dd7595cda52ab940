package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventMinutes(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{hours: 13.5, want: 810},  // 13:30
		{hours: 7.0, want: 420},   // 07:00
		{hours: 13.33, want: 800}, // 13:20, дробная часть округляется до минуты
		{hours: 9.75, want: 585},  // 09:45
		{hours: 0, want: 0},
	}

	for _, tt := range tests {
		ev := Event{TimeStart: tt.hours, TimeEnd: tt.hours}
		assert.Equal(t, tt.want, ev.StartMinutes(), "hours=%v", tt.hours)
		assert.Equal(t, tt.want, ev.EndMinutes(), "hours=%v", tt.hours)
	}
}

func TestEventOccupies(t *testing.T) {
	assert.True(t, Event{Status: StatusClassMeeting}.Occupies())
	assert.True(t, Event{Status: StatusReserved}.Occupies())
	assert.True(t, Event{Status: StatusBlackout}.Occupies())
	assert.False(t, Event{Status: StatusTentative}.Occupies())
	assert.False(t, Event{Status: StatusCancelled}.Occupies())
}
