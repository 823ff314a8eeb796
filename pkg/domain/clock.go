package domain

import "time"

type SeasonPhase string

const (
	PhasePreSeason      SeasonPhase = "PreSeason"      // July-August
	PhaseEarlySeason    SeasonPhase = "EarlySeason"    // September-December
	PhaseTransferWindow SeasonPhase = "TransferWindow" // January
	PhaseLateSeason     SeasonPhase = "LateSeason"     // February-April
	PhaseEndOfSeason    SeasonPhase = "EndOfSeason"    // May-June
)

// GameClockID is the fixed key of the singleton clock row.
const GameClockID = 1

// GameClock is the current game time state. Exactly one instance exists
// per save; only the clock engine writes to it.
type GameClock struct {
	ID          int         `json:"id"`
	CurrentDate time.Time   `json:"currentDate"`
	Season      int         `json:"season"` // year the season started in
	Phase       SeasonPhase `json:"phase"`
}
