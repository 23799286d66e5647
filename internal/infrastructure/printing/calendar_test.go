package printing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"regular wednesday", date(2024, time.June, 12), true},
		{"saturday", date(2024, time.June, 15), false},
		{"sunday", date(2024, time.June, 16), false},
		{"labour day", date(2024, time.May, 1), false},
		{"christmas", date(2024, time.December, 25), false},
		{"tiradentes", date(2025, time.April, 21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBusinessDay(tt.day))
		})
	}
}

func TestSubtractBusinessDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"zero returns input", date(2024, time.June, 12), 0, date(2024, time.June, 12)},
		{"monday minus one is friday", date(2024, time.June, 10), 1, date(2024, time.June, 7)},
		{"midweek minus one", date(2024, time.June, 12), 1, date(2024, time.June, 11)},
		// walking back from Thursday May 2nd skips the May 1st holiday
		{"holiday is skipped", date(2024, time.May, 2), 2, date(2024, time.April, 29)},
		{"crosses weekend and holiday", date(2024, time.December, 26), 2, date(2024, time.December, 23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtractBusinessDays(tt.from, tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentDates(t *testing.T) {
	// Wednesday 2024-06-12
	payment := date(2024, time.June, 12)

	assert.Equal(t, date(2024, time.June, 10), DocumentDate(payment))
	assert.Equal(t, date(2024, time.May, 22), PriceResearchDate(payment))
}

func TestMeetingTime(t *testing.T) {
	assert.Equal(t, "15:30", MeetingTime(date(2024, time.June, 12)))
	assert.Equal(t, "09:00", MeetingTime(date(2024, time.June, 11)))
}
