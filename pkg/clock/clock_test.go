package clock

import (
	"errors"
	"testing"
	"time"

	"footballdirector/pkg/domain"
)

type fakeClockStore struct {
	clock    *domain.GameClock
	setCalls int
}

func (f *fakeClockStore) GetClock() (domain.GameClock, bool, error) {
	if f.clock == nil {
		return domain.GameClock{}, false, nil
	}
	return *f.clock, true, nil
}

func (f *fakeClockStore) SetClock(c domain.GameClock) error {
	f.setCalls++
	f.clock = &c
	return nil
}

func newFakeStore(y int, m time.Month, d int) *fakeClockStore {
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &fakeClockStore{clock: &domain.GameClock{
		ID:          domain.GameClockID,
		CurrentDate: date,
		Season:      SeasonFor(date),
		Phase:       PhaseFor(date),
	}}
}

func TestPhaseFor(t *testing.T) {
	cases := []struct {
		month time.Month
		want  domain.SeasonPhase
	}{
		{time.July, domain.PhasePreSeason},
		{time.August, domain.PhasePreSeason},
		{time.September, domain.PhaseEarlySeason},
		{time.October, domain.PhaseEarlySeason},
		{time.November, domain.PhaseEarlySeason},
		{time.December, domain.PhaseEarlySeason},
		{time.January, domain.PhaseTransferWindow},
		{time.February, domain.PhaseLateSeason},
		{time.March, domain.PhaseLateSeason},
		{time.April, domain.PhaseLateSeason},
		{time.May, domain.PhaseEndOfSeason},
		{time.June, domain.PhaseEndOfSeason},
	}
	for _, tc := range cases {
		date := time.Date(2024, tc.month, 15, 0, 0, 0, 0, time.UTC)
		if got := PhaseFor(date); got != tc.want {
			t.Fatalf("PhaseFor(%s): got %q want %q", tc.month, got, tc.want)
		}
	}
}

func TestSeasonForSpansTwoCalendarYears(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), 2023},
	}
	for _, tc := range cases {
		if got := SeasonFor(tc.date); got != tc.want {
			t.Fatalf("SeasonFor(%s): got %d want %d", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestAdvanceDaysRederivesSeasonAndPhase(t *testing.T) {
	fs := newFakeStore(2024, time.December, 30)
	engine := NewEngine(fs)

	c, err := engine.AdvanceDays(5)
	if err != nil {
		t.Fatalf("AdvanceDays: %v", err)
	}
	want := time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC)
	if !c.CurrentDate.Equal(want) {
		t.Fatalf("unexpected date: got %s want %s", c.CurrentDate, want)
	}
	if c.Phase != domain.PhaseTransferWindow {
		t.Fatalf("unexpected phase: got %q", c.Phase)
	}
	if c.Season != 2024 {
		t.Fatalf("season changed across new year: got %d want 2024", c.Season)
	}
}

func TestAdvanceDaysRollsSeasonInJuly(t *testing.T) {
	fs := newFakeStore(2025, time.June, 30)
	engine := NewEngine(fs)

	c, err := engine.AdvanceDays(1)
	if err != nil {
		t.Fatalf("AdvanceDays: %v", err)
	}
	if c.Season != 2025 {
		t.Fatalf("unexpected season: got %d want 2025", c.Season)
	}
	if c.Phase != domain.PhasePreSeason {
		t.Fatalf("unexpected phase: got %q", c.Phase)
	}
}

func TestAdvanceDaysRejectsNonPositive(t *testing.T) {
	for _, days := range []int{0, -1, -30} {
		fs := newFakeStore(2024, time.July, 1)
		engine := NewEngine(fs)

		_, err := engine.AdvanceDays(days)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("AdvanceDays(%d): expected validation error, got %v", days, err)
		}
		if fs.setCalls != 0 {
			t.Fatalf("AdvanceDays(%d): clock written despite rejection", days)
		}
		c, err := engine.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if want := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC); !c.CurrentDate.Equal(want) {
			t.Fatalf("AdvanceDays(%d): clock moved to %s", days, c.CurrentDate)
		}
	}
}

func TestAdvanceDaysEquivalentToRepeatedSingleDays(t *testing.T) {
	bulk := newFakeStore(2024, time.August, 20)
	single := newFakeStore(2024, time.August, 20)

	const n = 45
	got, err := NewEngine(bulk).AdvanceDays(n)
	if err != nil {
		t.Fatalf("AdvanceDays(%d): %v", n, err)
	}
	singleEngine := NewEngine(single)
	var step domain.GameClock
	for i := 0; i < n; i++ {
		step, err = singleEngine.AdvanceDays(1)
		if err != nil {
			t.Fatalf("AdvanceDays(1) step %d: %v", i, err)
		}
	}
	if !got.CurrentDate.Equal(step.CurrentDate) || got.Season != step.Season || got.Phase != step.Phase {
		t.Fatalf("bulk advance diverged: got %+v want %+v", got, step)
	}
}

func TestAdvanceToNextEventIsOneDay(t *testing.T) {
	fs := newFakeStore(2024, time.July, 1)
	engine := NewEngine(fs)

	c, err := engine.AdvanceToNextEvent()
	if err != nil {
		t.Fatalf("AdvanceToNextEvent: %v", err)
	}
	if want := time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC); !c.CurrentDate.Equal(want) {
		t.Fatalf("unexpected date: got %s want %s", c.CurrentDate, want)
	}
}

func TestCurrentOnEmptyStore(t *testing.T) {
	engine := NewEngine(&fakeClockStore{})
	if _, err := engine.Current(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := engine.AdvanceDays(1); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized on advance, got %v", err)
	}
}
