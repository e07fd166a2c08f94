package services

import (
	"testing"
	"time"
)

func TestSplitTimeSlots(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"single slot", "09:00", []string{"09:00"}},
		{"two slots with space", "08:00, 20:00", []string{"08:00", "20:00"}},
		{"two slots without space", "08:00,20:00", []string{"08:00", "20:00"}},
		{"trailing comma", "07:00,", []string{"07:00"}},
		{"empty", "", nil},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got := SplitTimeSlots(testCase.input)
			if len(got) != len(testCase.want) {
				t.Fatalf("SplitTimeSlots(%q) = %#v, want %#v", testCase.input, got, testCase.want)
			}
			for index := range got {
				if got[index] != testCase.want[index] {
					t.Fatalf("SplitTimeSlots(%q) = %#v, want %#v", testCase.input, got, testCase.want)
				}
			}
		})
	}
}

func TestDateAtLocationTruncatesToMidnight(t *testing.T) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	value := time.Date(2024, time.January, 20, 23, 45, 0, 0, time.UTC)
	got := DateAtLocation(value, location)

	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("DateAtLocation() = %v, want midnight", got)
	}
	// 23:45 UTC is already Jan 21 in Berlin.
	if got.Day() != 21 {
		t.Fatalf("DateAtLocation() day = %d, want 21", got.Day())
	}
}

func TestDayRangeSpansOneDay(t *testing.T) {
	start, end := DayRange(time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC), time.UTC)
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("DayRange() end = %v, want %v", end, start.AddDate(0, 0, 1))
	}
}
