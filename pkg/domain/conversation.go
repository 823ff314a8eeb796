package domain

import "time"

// Conversation is a thread between the player and an NPC. PersonName and
// PersonRole are captured when the conversation is created, not joined
// live, so historical threads keep showing the role the person held at
// the time.
type Conversation struct {
	ID             int        `json:"id"`
	PersonID       int        `json:"personId"`
	PersonName     string     `json:"personName"`
	PersonRole     string     `json:"personRole"` // "Footballer", "Coach", "Scout", ...
	InitiatedByNpc bool       `json:"initiatedByNpc"`
	StartedAt      time.Time  `json:"startedAt"`
	LastMessageAt  *time.Time `json:"lastMessageAt,omitempty"` // nil until first message
	IsRead         bool       `json:"isRead"`
	Subject        string     `json:"subject,omitempty"`
	Messages       []Message  `json:"messages,omitempty"`
}

// Message belongs to exactly one conversation and is removed with it.
// Within a conversation messages are ordered by SentAt, insertion order
// breaking ties.
type Message struct {
	ID             int       `json:"id"`
	ConversationID int       `json:"conversationId"`
	FromPlayer     bool      `json:"fromPlayer"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sentAt"`
}
