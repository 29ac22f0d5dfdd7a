// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for card persistence operations

package interfaces

import (
	"context"
	"errors"

	"cardforge-api/core/domain"
)

// ErrUnordered is returned by ListByOwner when the backend cannot order the
// result set server-side; callers should sort newest-first in memory.
var ErrUnordered = errors.New("storage cannot order results")

// CardStorage defines the interface for card persistence
type CardStorage interface {
	// Save persists a card and returns nil on success
	Save(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by ID; returns (nil, nil) when not found
	GetByID(ctx context.Context, id string) (*domain.Card, error)

	// ListByOwner returns all cards for an owner ordered by creation time
	// descending. May return the unordered list together with ErrUnordered.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Card, error)

	// Delete removes a card by ID
	Delete(ctx context.Context, id string) error

	// IncrementViewCount bumps the view counter for a card
	IncrementViewCount(ctx context.Context, id string) error

	// IncrementShareCount bumps the share counter for a card
	IncrementShareCount(ctx context.Context, id string) error
}
