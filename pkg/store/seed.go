package store

import (
	"fmt"
	"time"

	"footballdirector/pkg/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// EnsureSeeded bootstraps an empty save: a clock at the start of the
// 2024/25 pre-season and the fixed starter dataset. An already-populated
// save is left untouched.
func EnsureSeeded(s Store) error {
	if _, ok, err := s.GetClock(); err != nil {
		return fmt.Errorf("check clock: %w", err)
	} else if !ok {
		if err := s.SetClock(domain.GameClock{
			ID:          domain.GameClockID,
			CurrentDate: date(2024, time.July, 1),
			Season:      2024,
			Phase:       domain.PhasePreSeason,
		}); err != nil {
			return fmt.Errorf("seed clock: %w", err)
		}
	}

	count, err := s.CountFootballers()
	if err != nil {
		return fmt.Errorf("check squad: %w", err)
	}
	if count > 0 {
		return nil
	}
	return seed(s)
}

func seed(s Store) error {
	for _, f := range seedFootballers() {
		if err := s.SaveFootballer(f); err != nil {
			return fmt.Errorf("seed footballer %d: %w", f.ID, err)
		}
	}
	for _, m := range seedStaff() {
		if err := s.SaveStaff(m); err != nil {
			return fmt.Errorf("seed staff %d: %w", m.Profile().ID, err)
		}
	}
	if err := s.SaveClub(seedClub()); err != nil {
		return fmt.Errorf("seed club: %w", err)
	}
	for _, c := range seedConversations() {
		if err := s.CreateConversation(c); err != nil {
			return fmt.Errorf("seed conversation %d: %w", c.ID, err)
		}
	}
	return nil
}

func person(id int, first, last string, dob time.Time, nationality string, pt domain.PersonalityType, upbringing, coreMemory, funFact string) domain.Person {
	return domain.Person{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		DateOfBirth: dob,
		Nationality: nationality,
		Personality: domain.Personality{
			Type: pt,
			Backstory: domain.Backstory{
				Upbringing: upbringing,
				CoreMemory: coreMemory,
				FunFact:    funFact,
			},
		},
	}
}

func seedFootballers() []domain.Footballer {
	return []domain.Footballer{
		{
			Person: person(1, "Danny", "Fletcher", date(1997, time.March, 15), "England", domain.Maverick,
				"Grew up on a council estate in Sheffield with a hardworking single mother.",
				"Scoring a hat-trick on his Premier League debut as an 18-year-old substitute.",
				"Runs a charity providing sports equipment to underprivileged schools."),
			Position: "LW", OverallRating: 81, Pace: 92, Shooting: 78, Passing: 74, Dribbling: 85, Defending: 45, Physical: 72,
		},
		{
			Person: person(2, "Pablo", "Moreno", date(2007, time.August, 22), "Spain", domain.Virtuoso,
				"Raised in a working-class neighborhood near Valencia by immigrant parents.",
				"Being scouted by a top academy at just 8 years old after a street football video went viral.",
				"Still lives with his grandmother who taught him his first skills with a tennis ball."),
			Position: "RW", OverallRating: 83, Pace: 88, Shooting: 76, Passing: 79, Dribbling: 90, Defending: 32, Physical: 56,
		},
		{
			Person: person(3, "Magnus", "Lindqvist", date(2000, time.January, 8), "Norway", domain.Warrior,
				"Born into a family of cross-country skiers in Trondheim who wanted him to follow tradition.",
				"Scoring 5 goals in a cup final after his team was down 2-0 at halftime.",
				"Practices meditation daily and is obsessed with sleep optimization and recovery routines."),
			Position: "ST", OverallRating: 91, Pace: 89, Shooting: 93, Passing: 65, Dribbling: 80, Defending: 45, Physical: 88,
		},
		{
			Person: person(4, "Tyler", "Chambers", date(2003, time.May, 30), "England", domain.Heartbeat,
				"Grew up in Birmingham with parents who ran a local youth football club.",
				"Captained his country's U-21 team to a European championship.",
				"Speaks fluent German after a teenage exchange program sparked his love of languages."),
			Position: "CAM", OverallRating: 88, Pace: 78, Shooting: 82, Passing: 83, Dribbling: 86, Defending: 68, Physical: 78,
		},
		{
			Person: person(5, "Luuk", "de Groot", date(1991, time.November, 3), "Netherlands", domain.Mentor,
				"Lost his father to illness when he was a teenager in Rotterdam.",
				"Being released by his boyhood club as a youngster and almost giving up on football.",
				"Plays chess competitively and uses it to sharpen his tactical reading of the game."),
			Position: "CB", OverallRating: 89, Pace: 62, Shooting: 60, Passing: 72, Dribbling: 55, Defending: 92, Physical: 86,
		},
		{
			Person: person(6, "Sergio", "Vidal", date(1996, time.April, 17), "Spain", domain.Strategist,
				"Grew up in a middle-class Seville family with parents who valued education.",
				"Winning Player of the Tournament after a dominant European Championship.",
				"Has a degree in economics and considered becoming a financial analyst."),
			Position: "CDM", OverallRating: 90, Pace: 58, Shooting: 72, Passing: 88, Dribbling: 79, Defending: 88, Physical: 82,
		},
		{
			Person: person(7, "Thierry", "Dubois", date(1998, time.September, 12), "France", domain.Showman,
				"Raised in the Paris suburbs by a father who coached amateur football and a mother who was a track athlete.",
				"Becoming a World Cup winner at 20 and gracing magazine covers worldwide.",
				"Donates his entire national team salary to charity and runs a foundation for youth athletics."),
			Position: "ST", OverallRating: 91, Pace: 97, Shooting: 89, Passing: 80, Dribbling: 92, Defending: 36, Physical: 78,
		},
		{
			Person: person(8, "Iker", "Ruiz", date(2002, time.February, 28), "Spain", domain.Introvert,
				"Grew up in a small coastal town in Galicia, far from mainland football academies.",
				"Playing over 60 matches in a single season at age 19 for club and country.",
				"Prefers staying home playing video games to going out, and is known for his quiet demeanor."),
			Position: "CM", OverallRating: 87, Pace: 72, Shooting: 75, Passing: 88, Dribbling: 88, Defending: 72, Physical: 65,
		},
	}
}

func seedStaff() []domain.StaffMember {
	return []domain.StaffMember{
		domain.Manager{
			Person: person(100, "Roberto", "Santini", date(1972, time.June, 20), "Italy", domain.Strategist,
				"Grew up in a small town near Milan, son of a factory worker who never missed a Sunday match.",
				"Leading a struggling Serie B team to promotion and a domestic cup final in the same season.",
				"Collects vintage tactical boards and has an impressive library of football philosophy books."),
			Tactics: 17, ManManagement: 15, Motivation: 16, MediaHandling: 12,
		},
		domain.Coach{
			Person: person(101, "Yuki", "Nakamura", date(1986, time.April, 5), "Japan", domain.Virtuoso,
				"Raised in Osaka by parents who ran a youth football academy.",
				"Developing three players who went on to play for the national team.",
				"Creates detailed video analysis packages set to classical music for player motivation."),
			Specialization: domain.SpecAttacking,
			Attacking:      16, Defending: 10, Goalkeeping: 5, Tactics: 14, Communication: 15,
		},
		domain.Coach{
			Person: person(102, "Graham", "Whitmore", date(1979, time.October, 11), "England", domain.Mentor,
				"Former professional defender who played over 400 matches in the lower leagues.",
				"Keeping a record 12 clean sheets during his playing days in a single season.",
				"Runs a popular podcast interviewing legendary defenders about the art of defending."),
			Specialization: domain.SpecDefending,
			Attacking:      8, Defending: 18, Goalkeeping: 7, Tactics: 15, Communication: 14,
		},
		domain.Scout{
			Person: person(103, "Maria", "Ferreira", date(1983, time.July, 25), "Portugal", domain.Strategist,
				"Daughter of a legendary Portuguese scout who discovered several world-class talents.",
				"Recommending a player for £500k who was later sold for £40 million.",
				"Speaks six languages fluently and travels over 200 days per year watching football."),
			JudgingAbility: 17, JudgingPotential: 19,
		},
		domain.Physio{
			Person: person(104, "Anders", "Bergström", date(1988, time.December, 3), "Sweden", domain.Heartbeat,
				"Former sports science student who specialized in elite athlete rehabilitation.",
				"Helping a star player return from a career-threatening injury ahead of schedule.",
				"Practices yoga daily and has completed multiple ultramarathons."),
			InjuryPrevention: 16, Recovery: 18,
		},
		domain.ChiefExecutive{
			Person: person(105, "Victoria", "Ashworth", date(1976, time.February, 14), "England", domain.Strategist,
				"Former investment banker who fell in love with football through her children's youth teams.",
				"Negotiating a stadium naming rights deal worth three times the previous valuation.",
				"The club was founded by her great-grandfather, making her the fourth generation to lead it."),
			BusinessAcumen: 17, Negotiation: 15,
		},
		domain.ClubOwner{
			Person: person(106, "Edward", "Ashworth", date(1948, time.September, 2), "England", domain.Mentor,
				"Raised in the directors' box at Greenfield Park, grandson of the club's founder.",
				"Handing the chief executive role to his daughter after forty years running the club himself.",
				"Still waters the pitch himself before the first home match of every season."),
			Wealth: 450_000_000, Ambition: 14,
		},
	}
}

func seedClub() domain.Club {
	return domain.Club{
		ID:             domain.ClubID,
		Name:           "Ashworth United",
		Stadium:        "Greenfield Park",
		League:         "Premier Division",
		LeaguePosition: 7,
		Finances: domain.ClubFinances{
			Balance:        12_500_000,
			TransferBudget: 8_000_000,
			WageBudget:     450_000,
			CurrentWages:   385_000,
		},
		// display hints only; every read recomputes from the live tables
		Counts: domain.ClubCounts{Footballers: 8, Staff: 7, UnreadMessages: 2},
	}
}

func seedConversations() []domain.Conversation {
	lastAt := func(t time.Time) *time.Time { return &t }
	return []domain.Conversation{
		{
			ID: 1, PersonID: 3, PersonName: "Magnus Lindqvist", PersonRole: "Footballer",
			InitiatedByNpc: true,
			StartedAt:      at(2024, time.January, 15, 10, 30),
			LastMessageAt:  lastAt(at(2024, time.January, 15, 11, 45)),
			IsRead:         false,
			Subject:        "Contract Discussion",
			Messages: []domain.Message{
				{ID: 1, ConversationID: 1, FromPlayer: false, Content: "Boss, I wanted to talk about my contract situation. I've been performing well and I think it's time we discussed an extension.", SentAt: at(2024, time.January, 15, 10, 30)},
				{ID: 2, ConversationID: 1, FromPlayer: true, Content: "Magnus, you've been excellent this season. What did you have in mind?", SentAt: at(2024, time.January, 15, 10, 45)},
				{ID: 3, ConversationID: 1, FromPlayer: false, Content: "I'm looking for a longer commitment and terms that reflect my contribution. I want to be here long-term, but I also need to feel valued.", SentAt: at(2024, time.January, 15, 11, 45)},
			},
		},
		{
			ID: 2, PersonID: 103, PersonName: "Maria Ferreira", PersonRole: "Scout",
			InitiatedByNpc: true,
			StartedAt:      at(2024, time.January, 14, 9, 0),
			LastMessageAt:  lastAt(at(2024, time.January, 14, 9, 15)),
			IsRead:         false,
			Subject:        "Youth Prospect Recommendation",
			Messages: []domain.Message{
				{ID: 4, ConversationID: 2, FromPlayer: false, Content: "I've been watching a young midfielder in the Portuguese second division. 19 years old, exceptional vision. I think he could be special.", SentAt: at(2024, time.January, 14, 9, 0)},
				{ID: 5, ConversationID: 2, FromPlayer: true, Content: "Tell me more. What makes him stand out?", SentAt: at(2024, time.January, 14, 9, 10)},
				{ID: 6, ConversationID: 2, FromPlayer: false, Content: "His passing range is remarkable for his age. He sees space before it opens. Reminds me of the player I recommended five years ago who's now worth £40m.", SentAt: at(2024, time.January, 14, 9, 15)},
			},
		},
		{
			ID: 3, PersonID: 100, PersonName: "Roberto Santini", PersonRole: "Manager",
			InitiatedByNpc: false,
			StartedAt:      at(2024, time.January, 10, 14, 0),
			LastMessageAt:  lastAt(at(2024, time.January, 10, 14, 30)),
			IsRead:         true,
			Subject:        "Formation Discussion",
			Messages: []domain.Message{
				{ID: 7, ConversationID: 3, FromPlayer: true, Content: "Roberto, I've been thinking about the squad balance. What formation do you think suits our current players best?", SentAt: at(2024, time.January, 10, 14, 0)},
				{ID: 8, ConversationID: 3, FromPlayer: false, Content: "With our attacking talent, I favor a 4-3-3. It lets us utilize the wingers and gives Chambers space to operate. But we need a holding midfielder to make it work.", SentAt: at(2024, time.January, 10, 14, 15)},
				{ID: 9, ConversationID: 3, FromPlayer: true, Content: "Vidal could anchor the midfield. He has the tactical awareness.", SentAt: at(2024, time.January, 10, 14, 20)},
				{ID: 10, ConversationID: 3, FromPlayer: false, Content: "Exactly what I was thinking. Vidal reads the game beautifully. With him holding, we can be more adventurous going forward.", SentAt: at(2024, time.January, 10, 14, 30)},
			},
		},
		{
			ID: 4, PersonID: 7, PersonName: "Thierry Dubois", PersonRole: "Footballer",
			InitiatedByNpc: true,
			StartedAt:      at(2024, time.January, 8, 16, 0),
			LastMessageAt:  lastAt(at(2024, time.January, 8, 16, 10)),
			IsRead:         true,
			Subject:        "Media Appearance Request",
			Messages: []domain.Message{
				{ID: 11, ConversationID: 4, FromPlayer: false, Content: "I've been invited to a charity gala next week. It would be great publicity for my foundation and the club. May I have permission to attend?", SentAt: at(2024, time.January, 8, 16, 0)},
				{ID: 12, ConversationID: 4, FromPlayer: true, Content: "Of course, Thierry. Your charity work reflects well on everyone. Just make sure you're fresh for the weekend match.", SentAt: at(2024, time.January, 8, 16, 10)},
			},
		},
	}
}
