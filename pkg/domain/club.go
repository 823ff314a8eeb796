package domain

// ClubID is the fixed key of the singleton club row.
const ClubID = 1

// ClubFinances is the club's financial snapshot in whole currency units.
type ClubFinances struct {
	Balance        int64 `json:"balance"`
	TransferBudget int64 `json:"transferBudget"`
	WageBudget     int64 `json:"wageBudget"` // weekly
	CurrentWages   int64 `json:"currentWages"`
}

// ClubCounts are dashboard cardinalities. Any persisted value is a
// display hint only; readers must reconcile against the live collections
// before surfacing it.
type ClubCounts struct {
	Footballers    int `json:"footballers"`
	Staff          int `json:"staff"`
	UnreadMessages int `json:"unreadMessages"`
}

// Club is the player's club. Exactly one instance exists per save.
type Club struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Stadium        string       `json:"stadium"`
	League         string       `json:"league"`
	LeaguePosition int          `json:"leaguePosition"`
	Finances       ClubFinances `json:"finances"`
	Counts         ClubCounts   `json:"counts"`
}
