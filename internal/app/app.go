// Package app composes the clock engine, the repository and the view
// projections into the operations the API layer calls. It holds no
// state of its own.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"footballdirector/pkg/ai"
	"footballdirector/pkg/clock"
	"footballdirector/pkg/domain"
	"footballdirector/pkg/store"
	"footballdirector/pkg/view"
)

const (
	defaultGenerateTimeout     = 90 * time.Second
	defaultGenerateTemperature = 0.8
	defaultGenerateMaxTokens   = 150
)

// Config holds runtime configuration for the game session.
type Config struct {
	SavePath            string
	Store               store.Store // overrides SavePath when set
	Generator           ai.Generator
	GenerateTimeout     time.Duration
	GenerateTemperature float32
	GenerateMaxTokens   int
}

// App is the game session facade.
type App struct {
	store           store.Store
	clock           *clock.Engine
	generator       ai.Generator
	generateTimeout time.Duration
	temperature     float32
	maxTokens       int
}

// New opens (or takes) the save store, seeds it on first use and wires
// the clock engine over it.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		if cfg.SavePath == "" {
			return nil, fmt.Errorf("save path required")
		}
		var err error
		dataStore, err = store.NewGormStore(cfg.SavePath)
		if err != nil {
			return nil, fmt.Errorf("init save store: %w", err)
		}
	}
	if err := store.EnsureSeeded(dataStore); err != nil {
		return nil, fmt.Errorf("seed save: %w", err)
	}
	generateTimeout := cfg.GenerateTimeout
	if generateTimeout <= 0 {
		generateTimeout = defaultGenerateTimeout
	}
	temperature := cfg.GenerateTemperature
	if temperature <= 0 {
		temperature = defaultGenerateTemperature
	}
	maxTokens := cfg.GenerateMaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultGenerateMaxTokens
	}
	return &App{
		store:           dataStore,
		clock:           clock.NewEngine(dataStore),
		generator:       cfg.Generator,
		generateTimeout: generateTimeout,
		temperature:     temperature,
		maxTokens:       maxTokens,
	}, nil
}

// GetClub returns the club with its dashboard counts recomputed from
// the live collections. The stored counts are a display hint only and
// are never surfaced as-is.
func (a *App) GetClub() (domain.Club, error) {
	club, ok, err := a.store.GetClub()
	if err != nil {
		return domain.Club{}, fmt.Errorf("load club: %w", err)
	}
	if !ok {
		return domain.Club{}, ErrSaveNotInitialized
	}

	var g errgroup.Group
	var footballers, staff, unread int
	g.Go(func() error {
		var err error
		footballers, err = a.store.CountFootballers()
		return err
	})
	g.Go(func() error {
		var err error
		staff, err = a.store.CountStaff()
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = a.store.CountUnreadConversations()
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Club{}, fmt.Errorf("recompute counts: %w", err)
	}
	club.Counts = view.LiveCounts(footballers, staff, unread)
	return club, nil
}

// ListFootballers returns the squad with ages derived against the
// current clock date.
func (a *App) ListFootballers() ([]view.FootballerView, error) {
	today, err := a.today()
	if err != nil {
		return nil, err
	}
	footballers, err := a.store.ListFootballers()
	if err != nil {
		return nil, fmt.Errorf("list footballers: %w", err)
	}
	res := make([]view.FootballerView, 0, len(footballers))
	for _, f := range footballers {
		res = append(res, view.ProjectFootballer(f, today))
	}
	return res, nil
}

// GetFootballer returns one squad member by id.
func (a *App) GetFootballer(id int) (view.FootballerView, error) {
	today, err := a.today()
	if err != nil {
		return view.FootballerView{}, err
	}
	f, ok, err := a.store.GetFootballer(id)
	if err != nil {
		return view.FootballerView{}, fmt.Errorf("load footballer: %w", err)
	}
	if !ok {
		return view.FootballerView{}, ErrFootballerNotFound
	}
	return view.ProjectFootballer(f, today), nil
}

// ListStaff returns staff flattened into the unified shape, optionally
// filtered by role.
func (a *App) ListStaff(role *domain.StaffRole) ([]view.StaffView, error) {
	today, err := a.today()
	if err != nil {
		return nil, err
	}
	members, err := a.store.ListStaff(role)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	res := make([]view.StaffView, 0, len(members))
	for _, m := range members {
		res = append(res, view.FlattenStaff(m, today))
	}
	return res, nil
}

// GetStaffMember returns one staff member, flattened.
func (a *App) GetStaffMember(id int) (view.StaffView, error) {
	today, err := a.today()
	if err != nil {
		return view.StaffView{}, err
	}
	m, ok, err := a.store.GetStaff(id)
	if err != nil {
		return view.StaffView{}, fmt.Errorf("load staff: %w", err)
	}
	if !ok {
		return view.StaffView{}, ErrStaffNotFound
	}
	return view.FlattenStaff(m, today), nil
}

// GetInbox returns NPC-initiated conversations as summaries, newest
// activity first.
func (a *App) GetInbox() ([]view.ConversationSummary, error) {
	convs, err := a.store.ListConversations(store.ConversationFilter{
		NpcInitiatedOnly: true,
		WithMessages:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	return view.Inbox(convs), nil
}

// GetConversation returns a full thread by id.
func (a *App) GetConversation(id int) (domain.Conversation, error) {
	conv, ok, err := a.store.GetConversation(id)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("load conversation: %w", err)
	}
	if !ok {
		return domain.Conversation{}, ErrConversationNotFound
	}
	return conv, nil
}

// GetConversationsForPerson returns every thread with one person as
// summaries, newest activity first.
func (a *App) GetConversationsForPerson(personID int) ([]view.ConversationSummary, error) {
	convs, err := a.store.ListConversations(store.ConversationFilter{
		PersonID:     &personID,
		WithMessages: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return view.Summaries(convs), nil
}

// GetClock returns the current game time.
func (a *App) GetClock() (domain.GameClock, error) {
	c, err := a.clock.Current()
	if err != nil {
		return domain.GameClock{}, a.clockErr(err)
	}
	return c, nil
}

// AdvanceClock moves game time forward by days.
func (a *App) AdvanceClock(days int) (domain.GameClock, error) {
	c, err := a.clock.AdvanceDays(days)
	if err != nil {
		return domain.GameClock{}, a.clockErr(err)
	}
	return c, nil
}

// AdvanceToNextEvent moves game time to the next event date.
func (a *App) AdvanceToNextEvent() (domain.GameClock, error) {
	c, err := a.clock.AdvanceToNextEvent()
	if err != nil {
		return domain.GameClock{}, a.clockErr(err)
	}
	return c, nil
}

// TestGeneration asks the text-generation service for a throwaway
// character sketch. The call is bounded by the configured timeout and
// its failure never touches game state.
func (a *App) TestGeneration(ctx context.Context) (string, error) {
	if a.generator == nil {
		return "", ErrGeneratorUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, a.generateTimeout)
	defer cancel()
	text, err := a.generator.Generate(ctx, ai.GenerateRequest{
		Prompt:       "Generate a fictional football player. Include their name, age, nationality, position, and a brief personality description. Keep it to 2-3 sentences.",
		SystemPrompt: "You are a creative writer for a football management game. Be concise.",
		Temperature:  a.temperature,
		MaxTokens:    a.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return text, nil
}

func (a *App) today() (time.Time, error) {
	c, err := a.clock.Current()
	if err != nil {
		return time.Time{}, a.clockErr(err)
	}
	return c.CurrentDate, nil
}

func (a *App) clockErr(err error) error {
	if errors.Is(err, clock.ErrNotInitialized) {
		return ErrSaveNotInitialized
	}
	return err
}
