// Package rollsession provides repository interface and types for dice roll sessions
package rollsession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rollsessionmock github.com/wrenhall/homebrew-api/internal/repositories/rollsession Repository

// RollSession is a collection of dice rolls grouped by entity and
// purpose. Sessions expire; a character draft's rolls don't outlive the
// draft flow.
type RollSession struct {
	// Entity that owns these rolls (e.g., "char_draft_123")
	EntityID string

	// Purpose groups related rolls (e.g., "ability_scores")
	Purpose string

	Rolls []Roll

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Roll is a single dice roll result
type Roll struct {
	// Unique identifier for this roll within the session
	RollID string

	// Dice notation that was rolled (e.g., "4d6")
	Notation string

	// Individual kept dice values
	Dice []int32

	// Final result after dropping dice
	Total int32

	// Dice removed by "drop lowest" style methods
	Dropped []int32

	// Human-readable description of the roll
	Description string
}

// CreateInput contains parameters for creating a roll session
type CreateInput struct {
	EntityID string
	Purpose  string
	Rolls    []Roll
	TTL      time.Duration
}

// CreateOutput contains the result of creating a roll session
type CreateOutput struct {
	Session *RollSession
}

// GetInput contains parameters for retrieving a roll session
type GetInput struct {
	EntityID string
	Purpose  string
}

// GetOutput contains the result of retrieving a roll session
type GetOutput struct {
	Session *RollSession
}

// DeleteInput contains parameters for deleting a roll session
type DeleteInput struct {
	EntityID string
	Purpose  string
}

// DeleteOutput contains the result of deleting a roll session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for roll session storage operations
type Repository interface {
	// Create stores a new roll session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a roll session by entity ID and purpose
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a roll session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing roll session (used for adding rolls)
	Update(ctx context.Context, session *RollSession) error
}
