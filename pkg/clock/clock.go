// Package clock owns the game clock singleton and the season state
// machine derived from it.
package clock

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"footballdirector/pkg/domain"
)

// ErrNotInitialized signals that no clock row exists yet. That only
// happens before save initialization, so callers treat it as a corrupt
// or unseeded save.
var ErrNotInitialized = errors.New("game clock not initialized")

// ClockStore is the slice of the repository the engine needs. The engine
// is the only component allowed to call SetClock.
type ClockStore interface {
	GetClock() (domain.GameClock, bool, error)
	SetClock(domain.GameClock) error
}

// PhaseFor derives the season phase from the calendar month alone.
func PhaseFor(date time.Time) domain.SeasonPhase {
	switch m := date.Month(); {
	case m == time.July || m == time.August:
		return domain.PhasePreSeason
	case m >= time.September && m <= time.December:
		return domain.PhaseEarlySeason
	case m == time.January:
		return domain.PhaseTransferWindow
	case m >= time.February && m <= time.April:
		return domain.PhaseLateSeason
	default: // May, June
		return domain.PhaseEndOfSeason
	}
}

// SeasonFor returns the year the season containing date started in.
// A football season spans two calendar years: July onwards belongs to
// the current year's season, January-June to the previous year's.
func SeasonFor(date time.Time) int {
	if date.Month() >= time.July {
		return date.Year()
	}
	return date.Year() - 1
}

// Engine advances game time. The mutex serializes the read-modify-write
// of the clock singleton so a reader observes either the old or the new
// (date, season, phase) triple, never a mix.
type Engine struct {
	mu    sync.Mutex
	store ClockStore
}

func NewEngine(store ClockStore) *Engine {
	return &Engine{store: store}
}

// Current returns the singleton clock state.
func (e *Engine) Current() (domain.GameClock, error) {
	c, ok, err := e.store.GetClock()
	if err != nil {
		return domain.GameClock{}, fmt.Errorf("load clock: %w", err)
	}
	if !ok {
		return domain.GameClock{}, ErrNotInitialized
	}
	return c, nil
}

// AdvanceDays moves the clock forward by days and re-derives season and
// phase from the new date. Time never moves backward: days < 1 is
// rejected before any state is touched.
func (e *Engine) AdvanceDays(days int) (domain.GameClock, error) {
	if days < 1 {
		return domain.GameClock{}, &domain.ValidationError{Field: "days", Value: int64(days), Min: 1}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok, err := e.store.GetClock()
	if err != nil {
		return domain.GameClock{}, fmt.Errorf("load clock: %w", err)
	}
	if !ok {
		return domain.GameClock{}, ErrNotInitialized
	}

	c.CurrentDate = c.CurrentDate.AddDate(0, 0, days)
	c.Phase = PhaseFor(c.CurrentDate)
	c.Season = SeasonFor(c.CurrentDate)

	if err := e.store.SetClock(c); err != nil {
		return domain.GameClock{}, fmt.Errorf("save clock: %w", err)
	}
	return c, nil
}

// AdvanceToNextEvent advances a single day. There is no event calendar
// yet, so "next event" is simply tomorrow.
func (e *Engine) AdvanceToNextEvent() (domain.GameClock, error) {
	return e.AdvanceDays(1)
}
