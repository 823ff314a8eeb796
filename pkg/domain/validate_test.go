package domain

import (
	"errors"
	"testing"
)

func TestFootballerValidateBounds(t *testing.T) {
	f := Footballer{
		Position:      "ST",
		OverallRating: 82,
		Pace:          80, Shooting: 85, Passing: 70, Dribbling: 78, Defending: 35, Physical: 76,
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("valid footballer rejected: %v", err)
	}

	f.Shooting = 100
	err := f.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Field != "shooting" || verr.Max != MaxSkillRating {
		t.Fatalf("unexpected error detail: %+v", verr)
	}

	f.Shooting = 85
	f.Pace = 0
	if err := f.Validate(); err == nil {
		t.Fatal("expected error for rating below minimum")
	}
}

func TestStaffValidateBounds(t *testing.T) {
	cases := []struct {
		name   string
		member StaffMember
		valid  bool
	}{
		{"valid coach", Coach{Specialization: SpecFitness, Attacking: 1, Defending: 20, Goalkeeping: 10, Tactics: 10, Communication: 10}, true},
		{"coach attribute over 20", Coach{Specialization: SpecFitness, Attacking: 21, Defending: 10, Goalkeeping: 10, Tactics: 10, Communication: 10}, false},
		{"manager attribute zero", Manager{Tactics: 0, ManManagement: 10, Motivation: 10, MediaHandling: 10}, false},
		{"valid owner", ClubOwner{Wealth: 1_000_000_000, Ambition: 20}, true},
		{"owner ambition over 20", ClubOwner{Wealth: 100, Ambition: 21}, false},
	}
	for _, tc := range cases {
		err := tc.member.Validate()
		if tc.valid && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	full := &ValidationError{Field: "pace", Value: 120, Min: 1, Max: 99}
	if got := full.Error(); got != "pace: 120 out of range [1,99]" {
		t.Fatalf("unexpected message: %q", got)
	}
	minOnly := &ValidationError{Field: "days", Value: -1, Min: 1}
	if got := minOnly.Error(); got != "days: -1 below minimum 1" {
		t.Fatalf("unexpected message: %q", got)
	}
}
