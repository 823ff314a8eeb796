package store

import (
	"time"

	"gorm.io/datatypes"
)

// GORM models used for persistence. Staff rows are stored flattened with
// nullable role-specific columns; the sum type mapping lives in
// gorm_store.go so nulls never leak past this package.

type ClockModel struct {
	ID          int       `gorm:"primaryKey"`
	CurrentDate time.Time `gorm:"not null"`
	Season      int       `gorm:"not null"`
	Phase       string    `gorm:"not null"`
}

type ClubModel struct {
	ID             int    `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Stadium        string
	League         string
	LeaguePosition int
	Balance        int64
	TransferBudget int64
	WageBudget     int64
	CurrentWages   int64
	// cached dashboard counts; reconciled against live counts on read
	FootballerCount    int
	StaffCount         int
	UnreadMessageCount int
}

type FootballerModel struct {
	ID              int       `gorm:"primaryKey"`
	FirstName       string    `gorm:"not null"`
	LastName        string    `gorm:"not null"`
	DateOfBirth     time.Time `gorm:"not null"`
	Nationality     string
	PersonalityType string
	Backstory       datatypes.JSON
	Position        string `gorm:"not null"`
	OverallRating   int
	Pace            int
	Shooting        int
	Passing         int
	Dribbling       int
	Defending       int
	Physical        int
}

type StaffModel struct {
	ID              int       `gorm:"primaryKey"`
	FirstName       string    `gorm:"not null"`
	LastName        string    `gorm:"not null"`
	DateOfBirth     time.Time `gorm:"not null"`
	Nationality     string
	PersonalityType string
	Backstory       datatypes.JSON
	Role            string `gorm:"not null;index"`

	Specialization *string

	Attacking     *int
	Defending     *int
	Goalkeeping   *int
	Tactics       *int
	Communication *int

	ManManagement *int
	Motivation    *int
	MediaHandling *int

	InjuryPrevention *int
	Recovery         *int

	JudgingAbility   *int
	JudgingPotential *int

	BusinessAcumen *int
	Negotiation    *int

	Wealth   *int64
	Ambition *int
}

type ConversationModel struct {
	ID             int    `gorm:"primaryKey"`
	PersonID       int    `gorm:"not null;index"`
	PersonName     string `gorm:"not null"`
	PersonRole     string `gorm:"not null"`
	InitiatedByNpc bool   `gorm:"not null;index"`
	StartedAt      time.Time
	LastMessageAt  *time.Time
	IsRead         bool
	Subject        string
}

type MessageModel struct {
	ID             int       `gorm:"primaryKey"`
	ConversationID int       `gorm:"not null;index"`
	FromPlayer     bool      `gorm:"not null"`
	Content        string    `gorm:"type:text;not null"`
	SentAt         time.Time `gorm:"not null;index"`
}
