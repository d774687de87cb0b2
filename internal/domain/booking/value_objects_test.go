//go:build unit

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, in, out time.Time) StayRange {
	t.Helper()
	stay, err := NewStayRange(in, out)
	require.NoError(t, err)
	return stay
}

func TestNewStayRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{
			name:     "valid range",
			checkIn:  date(2026, 6, 1),
			checkOut: date(2026, 6, 5),
		},
		{
			name:     "check-out equal to check-in is rejected",
			checkIn:  date(2026, 6, 1),
			checkOut: date(2026, 6, 1),
			wantErr:  ErrInvalidStayRange,
		},
		{
			name:     "check-out before check-in is rejected",
			checkIn:  date(2026, 6, 5),
			checkOut: date(2026, 6, 1),
			wantErr:  ErrInvalidStayRange,
		},
		{
			name:     "time-of-day is truncated before comparison",
			checkIn:  time.Date(2026, 6, 1, 23, 59, 0, 0, time.UTC),
			checkOut: time.Date(2026, 6, 1, 0, 1, 0, 0, time.UTC),
			wantErr:  ErrInvalidStayRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := NewStayRange(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date(tt.checkIn.Year(), tt.checkIn.Month(), tt.checkIn.Day()), stay.CheckIn())
		})
	}
}

func TestStayRangeOverlaps(t *testing.T) {
	base := date(2026, 6, 10)

	tests := []struct {
		name  string
		a     StayRange
		b     StayRange
		want  bool
	}{
		{
			name: "identical ranges overlap",
			a:    mustStay(t, base, base.AddDate(0, 0, 5)),
			b:    mustStay(t, base, base.AddDate(0, 0, 5)),
			want: true,
		},
		{
			name: "partial overlap at the tail",
			a:    mustStay(t, base, base.AddDate(0, 0, 5)),
			b:    mustStay(t, base.AddDate(0, 0, 3), base.AddDate(0, 0, 8)),
			want: true,
		},
		{
			name: "containment overlaps",
			a:    mustStay(t, base, base.AddDate(0, 0, 10)),
			b:    mustStay(t, base.AddDate(0, 0, 2), base.AddDate(0, 0, 4)),
			want: true,
		},
		{
			name: "touching ranges do not overlap (checkout day equals check-in day)",
			a:    mustStay(t, base, base.AddDate(0, 0, 5)),
			b:    mustStay(t, base.AddDate(0, 0, 5), base.AddDate(0, 0, 8)),
			want: false,
		},
		{
			name: "touching ranges do not overlap (reversed order)",
			a:    mustStay(t, base.AddDate(0, 0, 5), base.AddDate(0, 0, 8)),
			b:    mustStay(t, base, base.AddDate(0, 0, 5)),
			want: false,
		},
		{
			name: "disjoint ranges do not overlap",
			a:    mustStay(t, base, base.AddDate(0, 0, 2)),
			b:    mustStay(t, base.AddDate(0, 0, 6), base.AddDate(0, 0, 8)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestStayRangeNights(t *testing.T) {
	assert.Equal(t, 5, mustStay(t, date(2026, 6, 5), date(2026, 6, 10)).Nights())
	assert.Equal(t, 1, mustStay(t, date(2026, 6, 5), date(2026, 6, 6)).Nights())
}

func TestStayRangeEndedBefore(t *testing.T) {
	stay := mustStay(t, date(2026, 6, 1), date(2026, 6, 5))

	assert.False(t, stay.EndedBefore(date(2026, 6, 4)))
	// Checkout day itself still counts as active; promotion happens the
	// day after checkout.
	assert.False(t, stay.EndedBefore(date(2026, 6, 5)))
	assert.True(t, stay.EndedBefore(date(2026, 6, 6)))
}

func TestStayRangeStartsBefore(t *testing.T) {
	stay := mustStay(t, date(2026, 6, 10), date(2026, 6, 12))

	assert.False(t, stay.StartsBefore(date(2026, 6, 10)))
	assert.True(t, stay.StartsBefore(date(2026, 6, 11)))
}

func TestMoneyMul(t *testing.T) {
	assert.Equal(t, int64(45000), NewMoney(9000).Mul(5).Cents())
	assert.Equal(t, 450.0, NewMoney(9000).Mul(5).Dollars())
}
