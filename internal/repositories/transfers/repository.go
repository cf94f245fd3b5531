// Package transfers keeps a per-character journal of queued transfer commands
package transfers

//go:generate mockgen -destination=mock/mock_repository.go -package=transfersmock github.com/KirkDiggler/equipbest/internal/repositories/transfers Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
)

// Repository defines the interface for the transfer journal
type Repository interface {
	// Append adds transfers to the end of a character's journal
	// Returns errors.InvalidArgument for an empty character ID
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns a character's journal, oldest first. An unknown character
	// has an empty journal.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear deletes a character's journal
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)

	// Trim keeps only the newest Keep entries of a character's journal
	Trim(ctx context.Context, input TrimInput) (*TrimOutput, error)
}

// AppendInput defines the input for appending transfers
type AppendInput struct {
	CharacterID string
	Transfers   []equipment.TransferCommand
	// TTL refreshes the journal expiry. Zero uses the default.
	TTL time.Duration
}

// AppendOutput defines the output for appending transfers
type AppendOutput struct {
	Length int64
}

// ListInput defines the input for listing transfers
type ListInput struct {
	CharacterID string
	// Limit returns only the newest entries when positive
	Limit int64
}

// ListOutput defines the output for listing transfers
type ListOutput struct {
	Transfers []equipment.TransferCommand
}

// ClearInput defines the input for clearing a journal
type ClearInput struct {
	CharacterID string
}

// ClearOutput defines the output for clearing a journal
type ClearOutput struct {
	Deleted int64
}

// TrimInput defines the input for trimming a journal
type TrimInput struct {
	CharacterID string
	Keep        int64
}

// TrimOutput defines the output for trimming a journal
type TrimOutput struct {
	Removed int64
}
