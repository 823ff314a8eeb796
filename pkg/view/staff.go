package view

import (
	"time"

	"footballdirector/pkg/domain"
)

// StaffView is the unified staff shape carrying every attribute any role
// uses. Nil means the attribute does not exist for this role, which is
// distinct from a stored minimum of 1; the role discriminator says which
// fields to expect.
type StaffView struct {
	ID          int                `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Age         int                `json:"age"`
	Nationality string             `json:"nationality"`
	Personality domain.Personality `json:"personality"`
	Role        domain.StaffRole   `json:"role"`

	Specialization *domain.CoachSpecialization `json:"specialization,omitempty"`

	Attacking     *int `json:"attacking,omitempty"`
	Defending     *int `json:"defending,omitempty"`
	Goalkeeping   *int `json:"goalkeeping,omitempty"`
	Tactics       *int `json:"tactics,omitempty"`
	Communication *int `json:"communication,omitempty"`

	ManManagement *int `json:"manManagement,omitempty"`
	Motivation    *int `json:"motivation,omitempty"`
	MediaHandling *int `json:"mediaHandling,omitempty"`

	InjuryPrevention *int `json:"injuryPrevention,omitempty"`
	Recovery         *int `json:"recovery,omitempty"`

	JudgingAbility   *int `json:"judgingAbility,omitempty"`
	JudgingPotential *int `json:"judgingPotential,omitempty"`

	BusinessAcumen *int `json:"businessAcumen,omitempty"`
	Negotiation    *int `json:"negotiation,omitempty"`

	Wealth   *int64 `json:"wealth,omitempty"`
	Ambition *int   `json:"ambition,omitempty"`
}

// FlattenStaff projects a role variant into the unified shape, setting
// only the fields the variant owns. Age is derived against asOf.
func FlattenStaff(member domain.StaffMember, asOf time.Time) StaffView {
	p := member.Profile()
	v := StaffView{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Age:         Age(p.DateOfBirth, asOf),
		Nationality: p.Nationality,
		Personality: p.Personality,
		Role:        member.Role(),
	}
	switch s := member.(type) {
	case domain.Coach:
		spec := s.Specialization
		v.Specialization = &spec
		v.Attacking = ptr(s.Attacking)
		v.Defending = ptr(s.Defending)
		v.Goalkeeping = ptr(s.Goalkeeping)
		v.Tactics = ptr(s.Tactics)
		v.Communication = ptr(s.Communication)
	case domain.Manager:
		v.Tactics = ptr(s.Tactics)
		v.ManManagement = ptr(s.ManManagement)
		v.Motivation = ptr(s.Motivation)
		v.MediaHandling = ptr(s.MediaHandling)
	case domain.Physio:
		v.InjuryPrevention = ptr(s.InjuryPrevention)
		v.Recovery = ptr(s.Recovery)
	case domain.Scout:
		v.JudgingAbility = ptr(s.JudgingAbility)
		v.JudgingPotential = ptr(s.JudgingPotential)
	case domain.ChiefExecutive:
		v.BusinessAcumen = ptr(s.BusinessAcumen)
		v.Negotiation = ptr(s.Negotiation)
	case domain.ClubOwner:
		wealth := s.Wealth
		v.Wealth = &wealth
		v.Ambition = ptr(s.Ambition)
	}
	return v
}

// FootballerView is a footballer with the age derived for display.
type FootballerView struct {
	ID            int                `json:"id"`
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	Age           int                `json:"age"`
	Nationality   string             `json:"nationality"`
	Personality   domain.Personality `json:"personality"`
	Position      string             `json:"position"`
	OverallRating int                `json:"overallRating"`
	Pace          int                `json:"pace"`
	Shooting      int                `json:"shooting"`
	Passing       int                `json:"passing"`
	Dribbling     int                `json:"dribbling"`
	Defending     int                `json:"defending"`
	Physical      int                `json:"physical"`
}

// ProjectFootballer derives the display shape for a footballer as of the
// given clock date.
func ProjectFootballer(f domain.Footballer, asOf time.Time) FootballerView {
	return FootballerView{
		ID:            f.ID,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Age:           Age(f.DateOfBirth, asOf),
		Nationality:   f.Nationality,
		Personality:   f.Personality,
		Position:      f.Position,
		OverallRating: f.OverallRating,
		Pace:          f.Pace,
		Shooting:      f.Shooting,
		Passing:       f.Passing,
		Dribbling:     f.Dribbling,
		Defending:     f.Defending,
		Physical:      f.Physical,
	}
}

func ptr(v int) *int { return &v }
