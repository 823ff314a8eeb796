package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"footballdirector/pkg/domain"
)

// GormStore implements Store using GORM over a single SQLite save file.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens (or creates) the save file and runs auto-migrations.
func NewGormStore(path string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open save: %w", err)
	}
	if err := db.AutoMigrate(
		&ClockModel{}, &ClubModel{}, &FootballerModel{},
		&StaffModel{}, &ConversationModel{}, &MessageModel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// GetClub returns the singleton club row.
func (s *GormStore) GetClub() (domain.Club, bool, error) {
	var model ClubModel
	if err := s.db.First(&model, "id = ?", domain.ClubID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Club{}, false, nil
		}
		return domain.Club{}, false, err
	}
	return clubFromModel(model), true, nil
}

// SaveClub stores or updates the singleton club row.
func (s *GormStore) SaveClub(c domain.Club) error {
	model := clubToModel(c)
	model.ID = domain.ClubID
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&model).Error
}

// ListFootballers returns the full squad ordered by id.
func (s *GormStore) ListFootballers() ([]domain.Footballer, error) {
	var models []FootballerModel
	if err := s.db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Footballer, 0, len(models))
	for _, m := range models {
		res = append(res, footballerFromModel(m))
	}
	return res, nil
}

// GetFootballer retrieves one footballer.
func (s *GormStore) GetFootballer(id int) (domain.Footballer, bool, error) {
	var model FootballerModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Footballer{}, false, nil
		}
		return domain.Footballer{}, false, err
	}
	return footballerFromModel(model), true, nil
}

// SaveFootballer validates and stores or updates a footballer.
func (s *GormStore) SaveFootballer(f domain.Footballer) error {
	if err := f.Validate(); err != nil {
		return err
	}
	model := footballerToModel(f)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&model).Error
}

// CountFootballers returns the live squad size.
func (s *GormStore) CountFootballers() (int, error) {
	var count int64
	if err := s.db.Model(&FootballerModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// ListStaff returns staff ordered by id, optionally filtered by role.
func (s *GormStore) ListStaff(role *domain.StaffRole) ([]domain.StaffMember, error) {
	tx := s.db.Order("id ASC")
	if role != nil {
		tx = tx.Where("role = ?", string(*role))
	}
	var models []StaffModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.StaffMember, 0, len(models))
	for _, m := range models {
		member, err := staffFromModel(m)
		if err != nil {
			return nil, err
		}
		res = append(res, member)
	}
	return res, nil
}

// GetStaff retrieves one staff member as its concrete role variant.
func (s *GormStore) GetStaff(id int) (domain.StaffMember, bool, error) {
	var model StaffModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	member, err := staffFromModel(model)
	if err != nil {
		return nil, false, err
	}
	return member, true, nil
}

// SaveStaff validates and stores or updates a staff member.
func (s *GormStore) SaveStaff(m domain.StaffMember) error {
	if err := m.Validate(); err != nil {
		return err
	}
	model := staffToModel(m)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&model).Error
}

// CountStaff returns the live staff headcount.
func (s *GormStore) CountStaff() (int, error) {
	var count int64
	if err := s.db.Model(&StaffModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// ListConversations returns conversations newest-first by last message,
// threads with no messages sorting last, ties broken by started_at.
func (s *GormStore) ListConversations(filter ConversationFilter) ([]domain.Conversation, error) {
	tx := s.db.Order("last_message_at IS NULL").
		Order("last_message_at DESC").
		Order("started_at DESC")
	if filter.NpcInitiatedOnly {
		tx = tx.Where("initiated_by_npc = ?", true)
	}
	if filter.PersonID != nil {
		tx = tx.Where("person_id = ?", *filter.PersonID)
	}
	var models []ConversationModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Conversation, 0, len(models))
	for _, m := range models {
		conv := conversationFromModel(m)
		if filter.WithMessages {
			msgs, err := s.listMessages(conv.ID)
			if err != nil {
				return nil, err
			}
			conv.Messages = msgs
		}
		res = append(res, conv)
	}
	return res, nil
}

// GetConversation retrieves one conversation with its full thread.
func (s *GormStore) GetConversation(id int) (domain.Conversation, bool, error) {
	var model ConversationModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Conversation{}, false, nil
		}
		return domain.Conversation{}, false, err
	}
	conv := conversationFromModel(model)
	msgs, err := s.listMessages(id)
	if err != nil {
		return domain.Conversation{}, false, err
	}
	conv.Messages = msgs
	return conv, true, nil
}

func (s *GormStore) listMessages(conversationID int) ([]domain.Message, error) {
	var models []MessageModel
	if err := s.db.Where("conversation_id = ?", conversationID).
		Order("sent_at ASC").
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	msgs := make([]domain.Message, 0, len(models))
	for _, m := range models {
		msgs = append(msgs, messageFromModel(m))
	}
	return msgs, nil
}

// CreateConversation creates a conversation and any messages it carries
// in one transaction.
func (s *GormStore) CreateConversation(c domain.Conversation) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		model := conversationToModel(c)
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		for _, msg := range c.Messages {
			msgModel := messageToModel(msg)
			msgModel.ConversationID = model.ID
			if err := tx.Create(&msgModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendMessage extends a thread and bumps the conversation's
// last-message timestamp in one transaction. An incoming NPC message
// marks the conversation unread again.
func (s *GormStore) AppendMessage(conversationID int, msg domain.Message) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var conv ConversationModel
		if err := tx.First(&conv, "id = ?", conversationID).Error; err != nil {
			return err
		}
		model := messageToModel(msg)
		model.ConversationID = conversationID
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		updates := map[string]any{"last_message_at": msg.SentAt.UTC()}
		if !msg.FromPlayer {
			updates["is_read"] = false
		}
		return tx.Model(&ConversationModel{}).Where("id = ?", conversationID).Updates(updates).Error
	})
}

// SetConversationRead flips the read flag.
func (s *GormStore) SetConversationRead(id int, read bool) error {
	return s.db.Model(&ConversationModel{}).Where("id = ?", id).
		Update("is_read", read).Error
}

// CountUnreadConversations returns the live unread-thread count.
func (s *GormStore) CountUnreadConversations() (int, error) {
	var count int64
	if err := s.db.Model(&ConversationModel{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// GetClock returns the singleton clock row.
func (s *GormStore) GetClock() (domain.GameClock, bool, error) {
	var model ClockModel
	if err := s.db.First(&model, "id = ?", domain.GameClockID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.GameClock{}, false, nil
		}
		return domain.GameClock{}, false, err
	}
	return clockFromModel(model), true, nil
}

// SetClock writes the (date, season, phase) triple as a single row
// upsert, so readers see the old state or the new one, never a mix.
func (s *GormStore) SetClock(c domain.GameClock) error {
	model := clockToModel(c)
	model.ID = domain.GameClockID
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&model).Error
}

func clockToModel(c domain.GameClock) ClockModel {
	return ClockModel{
		ID:          c.ID,
		CurrentDate: c.CurrentDate.UTC(),
		Season:      c.Season,
		Phase:       string(c.Phase),
	}
}

func clockFromModel(m ClockModel) domain.GameClock {
	return domain.GameClock{
		ID:          m.ID,
		CurrentDate: m.CurrentDate.UTC(),
		Season:      m.Season,
		Phase:       domain.SeasonPhase(m.Phase),
	}
}

func clubToModel(c domain.Club) ClubModel {
	return ClubModel{
		ID:                 c.ID,
		Name:               c.Name,
		Stadium:            c.Stadium,
		League:             c.League,
		LeaguePosition:     c.LeaguePosition,
		Balance:            c.Finances.Balance,
		TransferBudget:     c.Finances.TransferBudget,
		WageBudget:         c.Finances.WageBudget,
		CurrentWages:       c.Finances.CurrentWages,
		FootballerCount:    c.Counts.Footballers,
		StaffCount:         c.Counts.Staff,
		UnreadMessageCount: c.Counts.UnreadMessages,
	}
}

func clubFromModel(m ClubModel) domain.Club {
	return domain.Club{
		ID:             m.ID,
		Name:           m.Name,
		Stadium:        m.Stadium,
		League:         m.League,
		LeaguePosition: m.LeaguePosition,
		Finances: domain.ClubFinances{
			Balance:        m.Balance,
			TransferBudget: m.TransferBudget,
			WageBudget:     m.WageBudget,
			CurrentWages:   m.CurrentWages,
		},
		Counts: domain.ClubCounts{
			Footballers:    m.FootballerCount,
			Staff:          m.StaffCount,
			UnreadMessages: m.UnreadMessageCount,
		},
	}
}

func marshalBackstory(b domain.Backstory) []byte {
	raw, _ := json.Marshal(b)
	return raw
}

func unmarshalBackstory(raw []byte) domain.Backstory {
	var b domain.Backstory
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &b)
	}
	return b
}

func footballerToModel(f domain.Footballer) FootballerModel {
	return FootballerModel{
		ID:              f.ID,
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		DateOfBirth:     f.DateOfBirth.UTC(),
		Nationality:     f.Nationality,
		PersonalityType: string(f.Personality.Type),
		Backstory:       marshalBackstory(f.Personality.Backstory),
		Position:        f.Position,
		OverallRating:   f.OverallRating,
		Pace:            f.Pace,
		Shooting:        f.Shooting,
		Passing:         f.Passing,
		Dribbling:       f.Dribbling,
		Defending:       f.Defending,
		Physical:        f.Physical,
	}
}

func footballerFromModel(m FootballerModel) domain.Footballer {
	return domain.Footballer{
		Person: domain.Person{
			ID:          m.ID,
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			DateOfBirth: m.DateOfBirth.UTC(),
			Nationality: m.Nationality,
			Personality: domain.Personality{
				Type:      domain.PersonalityType(m.PersonalityType),
				Backstory: unmarshalBackstory(m.Backstory),
			},
		},
		Position:      m.Position,
		OverallRating: m.OverallRating,
		Pace:          m.Pace,
		Shooting:      m.Shooting,
		Passing:       m.Passing,
		Dribbling:     m.Dribbling,
		Defending:     m.Defending,
		Physical:      m.Physical,
	}
}

func personFromStaffModel(m StaffModel) domain.Person {
	return domain.Person{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DateOfBirth: m.DateOfBirth.UTC(),
		Nationality: m.Nationality,
		Personality: domain.Personality{
			Type:      domain.PersonalityType(m.PersonalityType),
			Backstory: unmarshalBackstory(m.Backstory),
		},
	}
}

// staffFromModel maps a flattened staff row back to its role variant.
// Columns that are not meaningful for the row's role stay behind here.
func staffFromModel(m StaffModel) (domain.StaffMember, error) {
	p := personFromStaffModel(m)
	switch domain.StaffRole(m.Role) {
	case domain.RoleCoach:
		spec := domain.CoachSpecialization("")
		if m.Specialization != nil {
			spec = domain.CoachSpecialization(*m.Specialization)
		}
		return domain.Coach{
			Person:         p,
			Specialization: spec,
			Attacking:      intOrZero(m.Attacking),
			Defending:      intOrZero(m.Defending),
			Goalkeeping:    intOrZero(m.Goalkeeping),
			Tactics:        intOrZero(m.Tactics),
			Communication:  intOrZero(m.Communication),
		}, nil
	case domain.RoleManager:
		return domain.Manager{
			Person:        p,
			Tactics:       intOrZero(m.Tactics),
			ManManagement: intOrZero(m.ManManagement),
			Motivation:    intOrZero(m.Motivation),
			MediaHandling: intOrZero(m.MediaHandling),
		}, nil
	case domain.RolePhysio:
		return domain.Physio{
			Person:           p,
			InjuryPrevention: intOrZero(m.InjuryPrevention),
			Recovery:         intOrZero(m.Recovery),
		}, nil
	case domain.RoleScout:
		return domain.Scout{
			Person:           p,
			JudgingAbility:   intOrZero(m.JudgingAbility),
			JudgingPotential: intOrZero(m.JudgingPotential),
		}, nil
	case domain.RoleChiefExecutive:
		return domain.ChiefExecutive{
			Person:         p,
			BusinessAcumen: intOrZero(m.BusinessAcumen),
			Negotiation:    intOrZero(m.Negotiation),
		}, nil
	case domain.RoleClubOwner:
		var wealth int64
		if m.Wealth != nil {
			wealth = *m.Wealth
		}
		return domain.ClubOwner{
			Person:   p,
			Wealth:   wealth,
			Ambition: intOrZero(m.Ambition),
		}, nil
	default:
		return nil, fmt.Errorf("unknown staff role %q for id %d", m.Role, m.ID)
	}
}

// staffToModel writes only the columns the variant owns, leaving the
// rest NULL so "absent" stays distinct from zero in the save file.
func staffToModel(member domain.StaffMember) StaffModel {
	p := member.Profile()
	m := StaffModel{
		ID:              p.ID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		DateOfBirth:     p.DateOfBirth.UTC(),
		Nationality:     p.Nationality,
		PersonalityType: string(p.Personality.Type),
		Backstory:       marshalBackstory(p.Personality.Backstory),
		Role:            string(member.Role()),
	}
	switch v := member.(type) {
	case domain.Coach:
		spec := string(v.Specialization)
		m.Specialization = &spec
		m.Attacking = intPtr(v.Attacking)
		m.Defending = intPtr(v.Defending)
		m.Goalkeeping = intPtr(v.Goalkeeping)
		m.Tactics = intPtr(v.Tactics)
		m.Communication = intPtr(v.Communication)
	case domain.Manager:
		m.Tactics = intPtr(v.Tactics)
		m.ManManagement = intPtr(v.ManManagement)
		m.Motivation = intPtr(v.Motivation)
		m.MediaHandling = intPtr(v.MediaHandling)
	case domain.Physio:
		m.InjuryPrevention = intPtr(v.InjuryPrevention)
		m.Recovery = intPtr(v.Recovery)
	case domain.Scout:
		m.JudgingAbility = intPtr(v.JudgingAbility)
		m.JudgingPotential = intPtr(v.JudgingPotential)
	case domain.ChiefExecutive:
		m.BusinessAcumen = intPtr(v.BusinessAcumen)
		m.Negotiation = intPtr(v.Negotiation)
	case domain.ClubOwner:
		wealth := v.Wealth
		m.Wealth = &wealth
		m.Ambition = intPtr(v.Ambition)
	}
	return m
}

func conversationToModel(c domain.Conversation) ConversationModel {
	var last *time.Time
	if c.LastMessageAt != nil {
		utc := c.LastMessageAt.UTC()
		last = &utc
	}
	return ConversationModel{
		ID:             c.ID,
		PersonID:       c.PersonID,
		PersonName:     c.PersonName,
		PersonRole:     c.PersonRole,
		InitiatedByNpc: c.InitiatedByNpc,
		StartedAt:      c.StartedAt.UTC(),
		LastMessageAt:  last,
		IsRead:         c.IsRead,
		Subject:        c.Subject,
	}
}

func conversationFromModel(m ConversationModel) domain.Conversation {
	var last *time.Time
	if m.LastMessageAt != nil {
		utc := m.LastMessageAt.UTC()
		last = &utc
	}
	return domain.Conversation{
		ID:             m.ID,
		PersonID:       m.PersonID,
		PersonName:     m.PersonName,
		PersonRole:     m.PersonRole,
		InitiatedByNpc: m.InitiatedByNpc,
		StartedAt:      m.StartedAt.UTC(),
		LastMessageAt:  last,
		IsRead:         m.IsRead,
		Subject:        m.Subject,
	}
}

func messageToModel(msg domain.Message) MessageModel {
	return MessageModel{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		FromPlayer:     msg.FromPlayer,
		Content:        msg.Content,
		SentAt:         msg.SentAt.UTC(),
	}
}

func messageFromModel(m MessageModel) domain.Message {
	return domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		FromPlayer:     m.FromPlayer,
		Content:        m.Content,
		SentAt:         m.SentAt.UTC(),
	}
}

func intPtr(v int) *int { return &v }

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
