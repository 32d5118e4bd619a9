package dice

import (
	"time"

	"github.com/wrenhall/homebrew-api/internal/repositories/rollsession"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Purpose     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *rollsession.Roll
	Session *rollsession.RollSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Purpose  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *rollsession.RollSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Purpose  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int32
}

// RollAbilityScoresInput defines the request for rolling a set of six
// ability scores
type RollAbilityScoresInput struct {
	EntityID string
	Method   string // "4d6_drop_lowest" or "3d6"
}

// RollAbilityScoresOutput defines the response for rolling ability scores
type RollAbilityScoresOutput struct {
	Rolls   []*rollsession.Roll
	Session *rollsession.RollSession
}
