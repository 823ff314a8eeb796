package store

import (
	"sort"
	"sync"

	"footballdirector/pkg/domain"
)

// MemoryStore keeps the whole save in-process. It backs tests and any
// wiring that does not want a save file on disk.
type MemoryStore struct {
	mu            sync.RWMutex
	club          *domain.Club
	clock         *domain.GameClock
	footballers   map[int]domain.Footballer
	staff         map[int]domain.StaffMember
	conversations map[int]domain.Conversation
	messages      map[int][]domain.Message // conversation id -> thread in insertion order
}

// NewMemoryStore initializes an empty in-memory save.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		footballers:   make(map[int]domain.Footballer),
		staff:         make(map[int]domain.StaffMember),
		conversations: make(map[int]domain.Conversation),
		messages:      make(map[int][]domain.Message),
	}
}

func (m *MemoryStore) GetClub() (domain.Club, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.club == nil {
		return domain.Club{}, false, nil
	}
	return *m.club, true, nil
}

func (m *MemoryStore) SaveClub(c domain.Club) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = domain.ClubID
	m.club = &c
	return nil
}

func (m *MemoryStore) ListFootballers() ([]domain.Footballer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Footballer, 0, len(m.footballers))
	for _, f := range m.footballers {
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (m *MemoryStore) GetFootballer(id int) (domain.Footballer, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.footballers[id]
	return f, ok, nil
}

func (m *MemoryStore) SaveFootballer(f domain.Footballer) error {
	if err := f.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.footballers[f.ID] = f
	return nil
}

func (m *MemoryStore) CountFootballers() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.footballers), nil
}

func (m *MemoryStore) ListStaff(role *domain.StaffRole) ([]domain.StaffMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.StaffMember, 0, len(m.staff))
	for _, s := range m.staff {
		if role != nil && s.Role() != *role {
			continue
		}
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Profile().ID < res[j].Profile().ID })
	return res, nil
}

func (m *MemoryStore) GetStaff(id int) (domain.StaffMember, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.staff[id]
	if !ok {
		return nil, false, nil
	}
	return s, true, nil
}

func (m *MemoryStore) SaveStaff(s domain.StaffMember) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staff[s.Profile().ID] = s
	return nil
}

func (m *MemoryStore) CountStaff() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.staff), nil
}

func (m *MemoryStore) ListConversations(filter ConversationFilter) ([]domain.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Conversation, 0, len(m.conversations))
	for _, c := range m.conversations {
		if filter.NpcInitiatedOnly && !c.InitiatedByNpc {
			continue
		}
		if filter.PersonID != nil && c.PersonID != *filter.PersonID {
			continue
		}
		if filter.WithMessages {
			c.Messages = append([]domain.Message(nil), m.messages[c.ID]...)
		} else {
			c.Messages = nil
		}
		res = append(res, c)
	}
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
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
	return res, nil
}

func (m *MemoryStore) GetConversation(id int) (domain.Conversation, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conversations[id]
	if !ok {
		return domain.Conversation{}, false, nil
	}
	c.Messages = append([]domain.Message(nil), m.messages[id]...)
	return c, true, nil
}

func (m *MemoryStore) CreateConversation(c domain.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := c.Messages
	c.Messages = nil
	m.conversations[c.ID] = c
	m.messages[c.ID] = append([]domain.Message(nil), msgs...)
	return nil
}

func (m *MemoryStore) AppendMessage(conversationID int, msg domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.conversations[conversationID]
	if !ok {
		return nil
	}
	msg.ConversationID = conversationID
	m.messages[conversationID] = append(m.messages[conversationID], msg)
	sent := msg.SentAt.UTC()
	c.LastMessageAt = &sent
	if !msg.FromPlayer {
		c.IsRead = false
	}
	m.conversations[conversationID] = c
	return nil
}

func (m *MemoryStore) SetConversationRead(id int, read bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.conversations[id]
	if !ok {
		return nil
	}
	c.IsRead = read
	m.conversations[id] = c
	return nil
}

func (m *MemoryStore) CountUnreadConversations() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, c := range m.conversations {
		if !c.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStore) GetClock() (domain.GameClock, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.clock == nil {
		return domain.GameClock{}, false, nil
	}
	return *m.clock, true, nil
}

func (m *MemoryStore) SetClock(c domain.GameClock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = domain.GameClockID
	m.clock = &c
	return nil
}

var _ Store = (*MemoryStore)(nil)
