package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seminarhub/hall-booking-service/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart types.TimeString
		aEnd   types.TimeString
		bStart types.TimeString
		bEnd   types.TimeString
		want   bool
	}{
		{name: "identical intervals", aStart: "10:00", aEnd: "12:00", bStart: "10:00", bEnd: "12:00", want: true},
		{name: "partial overlap", aStart: "10:00", aEnd: "12:00", bStart: "11:00", bEnd: "13:00", want: true},
		{name: "containment", aStart: "09:00", aEnd: "17:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "one minute overlap", aStart: "10:00", aEnd: "12:01", bStart: "12:00", bEnd: "13:00", want: true},
		{name: "touching end to start", aStart: "10:00", aEnd: "12:00", bStart: "12:00", bEnd: "14:00", want: false},
		{name: "touching start to end", aStart: "12:00", aEnd: "14:00", bStart: "10:00", bEnd: "12:00", want: false},
		{name: "disjoint", aStart: "08:00", aEnd: "09:00", bStart: "10:00", bEnd: "11:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestBooking_BlocksSlot(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).BlocksSlot())
	assert.True(t, (&Booking{Status: StatusApproved}).BlocksSlot())
	assert.False(t, (&Booking{Status: StatusRejected}).BlocksSlot())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("faculty")
	assert.NoError(t, err)
	assert.Equal(t, RoleFaculty, role)

	_, err = ParseRole("manager")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
