// Package store is the persistence boundary for all durable game state.
package store

import (
	"footballdirector/pkg/domain"
)

// ConversationFilter narrows ListConversations. WithMessages selects the
// loading mode explicitly: summary views never need the thread, detail
// views always do, and there is no implicit lazy load in between.
type ConversationFilter struct {
	PersonID         *int
	NpcInitiatedOnly bool
	WithMessages     bool
}

// Store defines persistence operations for the club, roster, staff,
// conversations and the game clock. Keyed lookups return (value, ok,
// error); a miss is a normal outcome, not an error.
type Store interface {
	// club (singleton)
	GetClub() (domain.Club, bool, error)
	SaveClub(domain.Club) error

	// footballers
	ListFootballers() ([]domain.Footballer, error)
	GetFootballer(id int) (domain.Footballer, bool, error)
	SaveFootballer(domain.Footballer) error
	CountFootballers() (int, error)

	// staff
	ListStaff(role *domain.StaffRole) ([]domain.StaffMember, error)
	GetStaff(id int) (domain.StaffMember, bool, error)
	SaveStaff(domain.StaffMember) error
	CountStaff() (int, error)

	// conversations
	ListConversations(filter ConversationFilter) ([]domain.Conversation, error)
	GetConversation(id int) (domain.Conversation, bool, error)
	CreateConversation(domain.Conversation) error
	AppendMessage(conversationID int, msg domain.Message) error
	SetConversationRead(id int, read bool) error
	CountUnreadConversations() (int, error)

	// clock (singleton; SetClock is reserved for the clock engine)
	GetClock() (domain.GameClock, bool, error)
	SetClock(domain.GameClock) error
}
