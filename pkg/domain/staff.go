package domain

type StaffRole string

const (
	RoleCoach          StaffRole = "Coach"
	RoleManager        StaffRole = "Manager"
	RolePhysio         StaffRole = "Physio"
	RoleScout          StaffRole = "Scout"
	RoleChiefExecutive StaffRole = "ChiefExecutive"
	RoleClubOwner      StaffRole = "ClubOwner"
)

type CoachSpecialization string

const (
	SpecAttacking   CoachSpecialization = "Attacking"
	SpecDefending   CoachSpecialization = "Defending"
	SpecGoalkeeping CoachSpecialization = "Goalkeeping"
	SpecFitness     CoachSpecialization = "Fitness"
	SpecSetPiece    CoachSpecialization = "SetPiece"
)

// StaffMember is the tagged union over the six staff variants. Each
// variant carries only the attributes meaningful to its role; flattening
// into one nullable shape happens at the view boundary, never here.
type StaffMember interface {
	Role() StaffRole
	Profile() Person
	Validate() error
}

// Coach is an assistant/specialist coach with focused expertise.
// Attributes are bounded to [1,20].
type Coach struct {
	Person
	Specialization CoachSpecialization `json:"specialization"`
	Attacking      int                 `json:"attacking"`
	Defending      int                 `json:"defending"`
	Goalkeeping    int                 `json:"goalkeeping"`
	Tactics        int                 `json:"tactics"`
	Communication  int                 `json:"communication"`
}

func (c Coach) Role() StaffRole { return RoleCoach }
func (c Coach) Profile() Person { return c.Person }

func (c Coach) Validate() error {
	return checkAttributes([]struct {
		field string
		value int
	}{
		{"attacking", c.Attacking},
		{"defending", c.Defending},
		{"goalkeeping", c.Goalkeeping},
		{"tactics", c.Tactics},
		{"communication", c.Communication},
	})
}

// Manager is the head coach, the main football decision maker.
type Manager struct {
	Person
	Tactics       int `json:"tactics"`
	ManManagement int `json:"manManagement"`
	Motivation    int `json:"motivation"`
	MediaHandling int `json:"mediaHandling"`
}

func (m Manager) Role() StaffRole { return RoleManager }
func (m Manager) Profile() Person { return m.Person }

func (m Manager) Validate() error {
	return checkAttributes([]struct {
		field string
		value int
	}{
		{"tactics", m.Tactics},
		{"manManagement", m.ManManagement},
		{"motivation", m.Motivation},
		{"mediaHandling", m.MediaHandling},
	})
}

// Physio is medical staff responsible for fitness and recovery.
type Physio struct {
	Person
	InjuryPrevention int `json:"injuryPrevention"`
	Recovery         int `json:"recovery"`
}

func (p Physio) Role() StaffRole { return RolePhysio }
func (p Physio) Profile() Person { return p.Person }

func (p Physio) Validate() error {
	return checkAttributes([]struct {
		field string
		value int
	}{
		{"injuryPrevention", p.InjuryPrevention},
		{"recovery", p.Recovery},
	})
}

// Scout is a talent identification specialist.
type Scout struct {
	Person
	JudgingAbility   int `json:"judgingAbility"`
	JudgingPotential int `json:"judgingPotential"`
}

func (s Scout) Role() StaffRole { return RoleScout }
func (s Scout) Profile() Person { return s.Person }

func (s Scout) Validate() error {
	return checkAttributes([]struct {
		field string
		value int
	}{
		{"judgingAbility", s.JudgingAbility},
		{"judgingPotential", s.JudgingPotential},
	})
}

// ChiefExecutive handles the club's business operations.
type ChiefExecutive struct {
	Person
	BusinessAcumen int `json:"businessAcumen"`
	Negotiation    int `json:"negotiation"`
}

func (c ChiefExecutive) Role() StaffRole { return RoleChiefExecutive }
func (c ChiefExecutive) Profile() Person { return c.Person }

func (c ChiefExecutive) Validate() error {
	return checkAttributes([]struct {
		field string
		value int
	}{
		{"businessAcumen", c.BusinessAcumen},
		{"negotiation", c.Negotiation},
	})
}

// ClubOwner is the money and ultimate authority. Wealth is net worth in
// currency units, not an attribute, so only Ambition is bounded.
type ClubOwner struct {
	Person
	Wealth   int64 `json:"wealth"`
	Ambition int   `json:"ambition"`
}

func (o ClubOwner) Role() StaffRole { return RoleClubOwner }
func (o ClubOwner) Profile() Person { return o.Person }

func (o ClubOwner) Validate() error {
	return checkAttributes([]struct {
		field string
		value int
	}{
		{"ambition", o.Ambition},
	})
}
