// Package content provides the interface for homebrew content persistence
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/wrenhall/homebrew-api/internal/repositories/content Repository

import (
	"context"

	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
)

// Repository defines the interface for homebrew content persistence
type Repository interface {
	// Create stores a new content record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a record with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a content record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing content record
	// Returns errors.NotFound if the record doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a content record by ID
	// Returns errors.NotFound if the record doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByType retrieves all content records of one type
	ListByType(ctx context.Context, input ListByTypeInput) (*ListByTypeOutput, error)
}

// CreateInput defines the input for storing content
type CreateInput struct {
	Content *homebrew.ContentRecord
}

// CreateOutput defines the output for storing content
type CreateOutput struct {
	Content *homebrew.ContentRecord
}

// GetInput defines the input for getting content
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting content
type GetOutput struct {
	Content *homebrew.ContentRecord
}

// UpdateInput defines the input for updating content
type UpdateInput struct {
	Content *homebrew.ContentRecord
}

// UpdateOutput defines the output for updating content
type UpdateOutput struct {
	Content *homebrew.ContentRecord
}

// DeleteInput defines the input for deleting content
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting content
type DeleteOutput struct{}

// ListByTypeInput defines the input for listing content by type
type ListByTypeInput struct {
	Type homebrew.ContentType
}

// ListByTypeOutput defines the output for listing content by type
type ListByTypeOutput struct {
	Contents []*homebrew.ContentRecord
}
