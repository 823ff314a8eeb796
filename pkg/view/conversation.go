package view

import (
	"sort"
	"time"

	"footballdirector/pkg/domain"
)

// previewLimit is how much of the last message a summary carries.
const previewLimit = 100

// ConversationSummary carries every conversation field except the
// message list, plus a preview of whatever was said last.
type ConversationSummary struct {
	ID                 int        `json:"id"`
	PersonID           int        `json:"personId"`
	PersonName         string     `json:"personName"`
	PersonRole         string     `json:"personRole"`
	InitiatedByNpc     bool       `json:"initiatedByNpc"`
	StartedAt          time.Time  `json:"startedAt"`
	LastMessageAt      *time.Time `json:"lastMessageAt,omitempty"`
	IsRead             bool       `json:"isRead"`
	Subject            string     `json:"subject,omitempty"`
	LastMessagePreview *string    `json:"lastMessagePreview,omitempty"`
}

// Summarize projects a conversation (with its messages loaded) into a
// summary. The preview is the chronologically last message truncated to
// previewLimit runes with a trailing ellipsis marker; nil when the
// thread is empty.
func Summarize(c domain.Conversation) ConversationSummary {
	s := ConversationSummary{
		ID:             c.ID,
		PersonID:       c.PersonID,
		PersonName:     c.PersonName,
		PersonRole:     c.PersonRole,
		InitiatedByNpc: c.InitiatedByNpc,
		StartedAt:      c.StartedAt,
		LastMessageAt:  c.LastMessageAt,
		IsRead:         c.IsRead,
		Subject:        c.Subject,
	}
	if last, ok := lastMessage(c.Messages); ok {
		preview := truncate(last.Content, previewLimit)
		s.LastMessagePreview = &preview
	}
	return s
}

// Summaries projects a slice of conversations preserving order.
func Summaries(convs []domain.Conversation) []ConversationSummary {
	res := make([]ConversationSummary, 0, len(convs))
	for _, c := range convs {
		res = append(res, Summarize(c))
	}
	return res
}

// Inbox selects the NPC-initiated conversations, summarized and ordered
// by last message descending. Threads with no messages sort after all
// threads that have one; ties fall back to startedAt descending.
func Inbox(convs []domain.Conversation) []ConversationSummary {
	inbox := make([]domain.Conversation, 0, len(convs))
	for _, c := range convs {
		if c.InitiatedByNpc {
			inbox = append(inbox, c)
		}
	}
	sort.SliceStable(inbox, func(i, j int) bool {
		a, b := inbox[i], inbox[j]
		switch {
		case a.LastMessageAt == nil && b.LastMessageAt == nil:
			return a.StartedAt.After(b.StartedAt)
		case a.LastMessageAt == nil:
			return false
		case b.LastMessageAt == nil:
			return true
		case !a.LastMessageAt.Equal(*b.LastMessageAt):
			return a.LastMessageAt.After(*b.LastMessageAt)
		default:
			return a.StartedAt.After(b.StartedAt)
		}
	})
	return Summaries(inbox)
}

// lastMessage picks the chronologically last message, insertion order
// breaking SentAt ties. The store returns threads already sorted this
// way; scanning keeps the projection correct for callers that built the
// slice by hand.
func lastMessage(msgs []domain.Message) (domain.Message, bool) {
	if len(msgs) == 0 {
		return domain.Message{}, false
	}
	last := msgs[0]
	for _, m := range msgs[1:] {
		if !m.SentAt.Before(last.SentAt) {
			last = m
		}
	}
	return last, true
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
