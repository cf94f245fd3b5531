// Package settings provides persistence for per-character upgrade filters
// and the global pool lock flags
package settings

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/KirkDiggler/equipbest/internal/repositories/settings Repository

import (
	"context"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
)

// Repository defines the interface for settings persistence
type Repository interface {
	// Get retrieves a character's filters combined with the global lock flags
	// Returns errors.InvalidArgument for an empty character name
	// Returns errors.NotFound if the character has no stored filters
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update stores a character's filters and the global lock flags
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character's filters. The lock flags are kept.
	// Returns errors.NotFound if the character has no stored filters
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting settings
type GetInput struct {
	CharacterName string
}

// GetOutput defines the output for getting settings
type GetOutput struct {
	Settings *equipment.Settings
}

// UpdateInput defines the input for updating settings
type UpdateInput struct {
	CharacterName string
	Settings      *equipment.Settings
}

// UpdateOutput defines the output for updating settings
type UpdateOutput struct {
	Settings *equipment.Settings
}

// DeleteInput defines the input for deleting settings
type DeleteInput struct {
	CharacterName string
}

// DeleteOutput defines the output for deleting settings
type DeleteOutput struct{}

// Load returns the stored settings for a character, or the defaults when
// nothing is stored
func Load(ctx context.Context, repo Repository, characterName string) (*equipment.Settings, error) {
	out, err := repo.Get(ctx, GetInput{CharacterName: characterName})
	if err != nil {
		if errors.IsNotFound(err) {
			return equipment.DefaultSettings(), nil
		}
		return nil, err
	}
	return out.Settings, nil
}
