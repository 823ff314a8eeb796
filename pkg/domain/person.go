package domain

import "time"

type PersonalityType string

const (
	Maverick   PersonalityType = "Maverick"   // unpredictable, creative, takes risks
	Virtuoso   PersonalityType = "Virtuoso"   // perfectionist, technically obsessed
	Heartbeat  PersonalityType = "Heartbeat"  // team player, emotional leader
	Mentor     PersonalityType = "Mentor"     // nurturing, focused on development
	Warrior    PersonalityType = "Warrior"    // combative, never gives up
	Strategist PersonalityType = "Strategist" // analytical, calm under pressure
	Showman    PersonalityType = "Showman"    // loves the spotlight, entertainer
	Introvert  PersonalityType = "Introvert"  // quiet, lets actions speak
)

// Backstory is a three-sentence character background used to inform
// NPC dialogue generation.
type Backstory struct {
	Upbringing string `json:"upbringing"`
	CoreMemory string `json:"coreMemory"`
	FunFact    string `json:"funFact"`
}

// Personality is immutable after creation for a given person.
type Personality struct {
	Type      PersonalityType `json:"type"`
	Backstory Backstory       `json:"backstory"`
}

// Person holds the fields shared by footballers and all staff roles.
// Age is never stored; it is derived from DateOfBirth against the game
// clock at read time, so it can never go stale across a clock advance.
type Person struct {
	ID          int         `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	DateOfBirth time.Time   `json:"dateOfBirth"`
	Nationality string      `json:"nationality"`
	Personality Personality `json:"personality"`
}
