package progression

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, 7, 1+d, 12, 0, 0, 0, time.UTC)
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		now   time.Time
		want  int
	}{
		{"empty", nil, day(0), 0},
		{"single today", []string{"2025-07-01"}, day(0), 1},
		{"single yesterday", []string{"2025-07-01"}, day(1), 1},
		{"single two days ago", []string{"2025-07-01"}, day(2), 0},
		{"run ending today", []string{"2025-07-01", "2025-07-02", "2025-07-03"}, day(2), 3},
		{"run ending yesterday", []string{"2025-07-01", "2025-07-02"}, day(2), 2},
		{"gap breaks run", []string{"2025-07-01", "2025-07-03"}, day(2), 1},
		{"duplicates collapse", []string{"2025-07-01", "2025-07-01", "2025-07-02"}, day(1), 2},
		{"unsorted input", []string{"2025-07-03", "2025-07-01", "2025-07-02"}, day(2), 3},
		{"garbage date", []string{"not-a-date"}, day(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeStreak(tt.dates, tt.now); got != tt.want {
				t.Errorf("computeStreak(%v, %s) = %d, want %d",
					tt.dates, dateString(tt.now), got, tt.want)
			}
		})
	}
}
