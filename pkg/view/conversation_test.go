package view

import (
	"strings"
	"testing"
	"time"

	"footballdirector/pkg/domain"
)

func conv(id int, npc bool, startedAt time.Time, lastAt *time.Time, msgs ...domain.Message) domain.Conversation {
	return domain.Conversation{
		ID:             id,
		PersonID:       id,
		PersonName:     "Person",
		PersonRole:     "Coach",
		InitiatedByNpc: npc,
		StartedAt:      startedAt,
		LastMessageAt:  lastAt,
		Messages:       msgs,
	}
}

func tp(t time.Time) *time.Time { return &t }

func TestSummarizePreviewTruncation(t *testing.T) {
	sent := d(2024, time.July, 1)
	cases := []struct {
		content string
		want    string
	}{
		{"short note", "short note"},
		{strings.Repeat("a", 100), strings.Repeat("a", 100)},
		{strings.Repeat("a", 101), strings.Repeat("a", 100) + "..."},
	}
	for _, tc := range cases {
		c := conv(1, true, sent, tp(sent), domain.Message{ID: 1, Content: tc.content, SentAt: sent})
		s := Summarize(c)
		if s.LastMessagePreview == nil {
			t.Fatalf("content %d chars: expected preview", len(tc.content))
		}
		if *s.LastMessagePreview != tc.want {
			t.Fatalf("content %d chars: got preview %q", len(tc.content), *s.LastMessagePreview)
		}
	}
}

func TestSummarizePreviewCountsRunes(t *testing.T) {
	sent := d(2024, time.July, 1)
	content := strings.Repeat("ü", 101)
	c := conv(1, true, sent, tp(sent), domain.Message{ID: 1, Content: content, SentAt: sent})
	s := Summarize(c)
	if s.LastMessagePreview == nil {
		t.Fatal("expected preview")
	}
	if want := strings.Repeat("ü", 100) + "..."; *s.LastMessagePreview != want {
		t.Fatalf("got preview %q", *s.LastMessagePreview)
	}
}

func TestSummarizeEmptyThread(t *testing.T) {
	c := conv(1, true, d(2024, time.July, 1), nil)
	s := Summarize(c)
	if s.LastMessagePreview != nil {
		t.Fatalf("expected nil preview, got %q", *s.LastMessagePreview)
	}
	if s.LastMessageAt != nil {
		t.Fatal("expected nil lastMessageAt")
	}
}

func TestSummarizePicksChronologicallyLastMessage(t *testing.T) {
	sent := d(2024, time.July, 1)
	later := sent.Add(time.Hour)
	c := conv(1, true, sent, tp(later),
		domain.Message{ID: 1, Content: "first", SentAt: sent},
		domain.Message{ID: 3, Content: "third", SentAt: later},
		domain.Message{ID: 2, Content: "second", SentAt: sent.Add(30 * time.Minute)},
	)
	s := Summarize(c)
	if s.LastMessagePreview == nil || *s.LastMessagePreview != "third" {
		t.Fatalf("got preview %v", s.LastMessagePreview)
	}
}

func TestInboxFiltersAndOrders(t *testing.T) {
	t1 := d(2024, time.July, 1)
	t2 := d(2024, time.July, 2)
	t3 := d(2024, time.July, 3)

	convs := []domain.Conversation{
		conv(1, true, t1, tp(t1)),
		conv(2, false, t1, tp(t3)), // player-initiated, excluded
		conv(3, true, t2, tp(t3)),
		conv(4, true, t3, nil), // no messages, sorts last
		conv(5, true, t1, tp(t2)),
	}

	inbox := Inbox(convs)
	gotIDs := make([]int, 0, len(inbox))
	for _, s := range inbox {
		gotIDs = append(gotIDs, s.ID)
	}
	want := []int{3, 5, 1, 4}
	if len(gotIDs) != len(want) {
		t.Fatalf("unexpected inbox size: got %v want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("unexpected order: got %v want %v", gotIDs, want)
		}
	}
}

func TestInboxTieBreaksOnStartedAt(t *testing.T) {
	last := d(2024, time.July, 5)
	convs := []domain.Conversation{
		conv(1, true, d(2024, time.July, 1), tp(last)),
		conv(2, true, d(2024, time.July, 3), tp(last)),
	}
	inbox := Inbox(convs)
	if inbox[0].ID != 2 || inbox[1].ID != 1 {
		t.Fatalf("expected later-started thread first, got %d then %d", inbox[0].ID, inbox[1].ID)
	}
}
