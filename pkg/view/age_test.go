package view

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestAgeAroundBirthday(t *testing.T) {
	dob := d(2000, time.March, 15)
	cases := []struct {
		asOf time.Time
		want int
	}{
		{d(2024, time.March, 14), 23},
		{d(2024, time.March, 15), 24},
		{d(2024, time.March, 16), 24},
		{d(2000, time.March, 15), 0},
		{d(2000, time.December, 31), 0},
	}
	for _, tc := range cases {
		if got := Age(dob, tc.asOf); got != tc.want {
			t.Fatalf("Age(%s, %s): got %d want %d",
				dob.Format("2006-01-02"), tc.asOf.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestAgeLeapDayBirth(t *testing.T) {
	dob := d(2004, time.February, 29)
	// In non-leap years the anniversary lands on March 1.
	if got := Age(dob, d(2023, time.February, 28)); got != 18 {
		t.Fatalf("before leap anniversary: got %d want 18", got)
	}
	if got := Age(dob, d(2023, time.March, 1)); got != 19 {
		t.Fatalf("on leap anniversary: got %d want 19", got)
	}
	if got := Age(dob, d(2024, time.February, 29)); got != 20 {
		t.Fatalf("on leap day: got %d want 20", got)
	}
}

func TestHasBirthdayOnIgnoresYear(t *testing.T) {
	dob := d(1990, time.October, 2)
	if !HasBirthdayOn(dob, d(2024, time.October, 2)) {
		t.Fatal("expected birthday match")
	}
	if HasBirthdayOn(dob, d(2024, time.October, 3)) {
		t.Fatal("did not expect birthday match")
	}
}
